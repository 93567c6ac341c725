// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Validation limits for accounts.
const (
	MaxNameLength     = 50
	MaxEmailLength    = 255
	MinPasswordLength = 6
)

// emailRegex matches the canonical email shape: local part of word
// characters, plus, minus, and dots; dot-separated domain labels of
// letters, digits, and minus; a letters-only top-level domain.
// Consecutive dots in the domain do not match. Compiled once.
var emailRegex = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

// DigestKind selects which stored digest Authenticated verifies against.
type DigestKind string

const (
	// DigestRemember verifies against the remember-me token digest.
	DigestRemember DigestKind = "remember"
	// DigestActivation verifies against the activation token digest.
	DigestActivation DigestKind = "activation"
)

// Account represents a registered user of the service.
//
// RememberToken and ActivationToken are transient: they hold plaintext
// token material in memory after issuance and are never persisted.
type Account struct {
	ID               ulid.ULID
	Name             string
	Email            string
	PasswordDigest   string
	RememberDigest   *string
	ActivationDigest string
	Activated        bool
	ActivatedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	RememberToken   string
	ActivationToken string
}

// NewAccount creates a validated account. The email is lower-cased before
// it is stored, and the activation token and its digest are generated
// exactly once here, as part of construction. There is no re-issue path.
func NewAccount(name, email, password string, hasher Hasher) (*Account, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	passwordDigest, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	activationDigest, err := hasher.Hash(token)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Account{
		ID:               ulid.Make(),
		Name:             name,
		Email:            email,
		PasswordDigest:   passwordDigest,
		ActivationDigest: activationDigest,
		ActivationToken:  token,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// NormalizeEmail lower-cases an email address. Uniqueness comparison is
// case-insensitive, so addresses are always stored in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// ValidateName checks that a display name is non-blank and within limits.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "cannot be blank"}
	}
	if len(name) > MaxNameLength {
		return &ValidationError{Field: "name", Message: "is too long"}
	}
	return nil
}

// ValidateEmail checks that an email address is non-blank, within limits,
// and matches the canonical email shape.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Message: "cannot be blank"}
	}
	if len(email) > MaxEmailLength {
		return &ValidationError{Field: "email", Message: "is too long"}
	}
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Message: "is invalid"}
	}
	return nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return &ValidationError{Field: "password", Message: "is too short"}
	}
	return nil
}

// Remember issues a new remember-me token, stores its digest on the
// account, and returns the plaintext token for the caller to hand to the
// client. Any prior remember session is overwritten: there is at most one
// valid remember token per account.
func (a *Account) Remember(hasher Hasher) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	digest, err := hasher.Hash(token)
	if err != nil {
		return "", err
	}
	a.RememberToken = token
	a.RememberDigest = &digest
	a.UpdatedAt = time.Now()
	return token, nil
}

// Forget clears the remember-me digest. Idempotent.
func (a *Account) Forget() {
	a.RememberToken = ""
	a.RememberDigest = nil
	a.UpdatedAt = time.Now()
}

// Authenticated reports whether the candidate token matches the digest of
// the given kind. A nil or unset digest returns false; this guards the
// race where another session cleared the remember digest mid-check.
func (a *Account) Authenticated(kind DigestKind, candidate string, hasher Hasher) bool {
	var digest string
	switch kind {
	case DigestRemember:
		if a.RememberDigest == nil {
			return false
		}
		digest = *a.RememberDigest
	case DigestActivation:
		digest = a.ActivationDigest
	default:
		return false
	}
	return hasher.Verify(digest, candidate)
}

// Activate marks the account activated at the given time. Activation is
// terminal; there is no deactivation path.
func (a *Account) Activate(at time.Time) {
	a.Activated = true
	a.ActivatedAt = &at
	a.UpdatedAt = at
}

// AccountRepository manages account persistence.
type AccountRepository interface {
	// Create stores a new account. Returns an error wrapping ErrEmailTaken
	// when the lower-cased email is already registered.
	Create(ctx context.Context, account *Account) error

	// GetByID retrieves an account by ID.
	GetByID(ctx context.Context, id ulid.ULID) (*Account, error)

	// GetByEmail retrieves an account by email (case-insensitive).
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Update updates an existing account's mutable fields.
	Update(ctx context.Context, account *Account) error

	// UpdateRememberDigest sets or clears the remember digest in a single
	// write. A nil digest clears the remembered session.
	UpdateRememberDigest(ctx context.Context, id ulid.ULID, digest *string) error

	// Activate flips the activation flag and timestamp in one atomic update.
	Activate(ctx context.Context, id ulid.ULID, at time.Time) error

	// Delete removes an account. Storage cascades deletion of the
	// account's content and of follow relations in either direction.
	Delete(ctx context.Context, id ulid.ULID) error
}
