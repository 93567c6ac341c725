// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/samber/oops"
)

// TokenBytes is the entropy drawn for each opaque token.
// 32 bytes encodes to a 43-character URL-safe string.
const TokenBytes = 32

// NewToken returns a cryptographically random, URL-safe opaque token.
func NewToken() (string, error) {
	raw := make([]byte, TokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", oops.Code("IDENTITY_TOKEN_GENERATE_FAILED").
			With("requested_bytes", TokenBytes).
			Wrap(err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
