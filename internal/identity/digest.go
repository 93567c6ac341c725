// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"
)

// DefaultDigestCost is the bcrypt work factor used in production.
// Tests use bcrypt.MinCost to keep suites fast.
const DefaultDigestCost = 12

// Hasher provides one-way hashing of secrets: passwords, remember tokens,
// and activation tokens.
type Hasher interface {
	// Hash produces a salted one-way digest of the secret.
	Hash(secret string) (string, error)

	// Verify reports whether the candidate matches the digest.
	// An empty digest never matches; Verify must not panic or error in
	// that case, since a concurrent Forget may clear a digest mid-check.
	Verify(digest, candidate string) bool
}

// BcryptHasher implements Hasher using bcrypt with a configurable cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. Costs outside bcrypt's valid
// range are clamped to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultDigestCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt digest of the secret.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", oops.Code("IDENTITY_EMPTY_SECRET").Errorf("secret cannot be empty")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", oops.Code("IDENTITY_DIGEST_FAILED").
			With("cost", h.cost).
			Wrap(err)
	}
	return string(digest), nil
}

// Verify reports whether the candidate matches the digest. A nil or empty
// digest returns false rather than an error; bcrypt's comparison is
// constant-time over the hashed output.
func (h *BcryptHasher) Verify(digest, candidate string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate)) == nil
}
