// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/observability"
)

// AccountService provides account lifecycle operations.
type AccountService struct {
	accounts AccountRepository
	hasher   Hasher
}

// NewAccountService creates an AccountService.
func NewAccountService(accounts AccountRepository, hasher Hasher) (*AccountService, error) {
	if accounts == nil {
		return nil, oops.Errorf("accounts repository is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	return &AccountService{accounts: accounts, hasher: hasher}, nil
}

// Register validates and persists a new account. On success it returns
// the account and the plaintext activation token for the activation email.
// An email collision surfaces as an error wrapping ErrEmailTaken, distinct
// from field validation failures.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*Account, string, error) {
	account, err := NewAccount(name, email, password, s.hasher)
	if err != nil {
		return nil, "", err
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", err
	}

	observability.RecordRegistration()
	return account, account.ActivationToken, nil
}

// GetByID retrieves an account by ID.
func (s *AccountService) GetByID(ctx context.Context, id ulid.ULID) (*Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// GetByEmail retrieves an account by email, case-insensitively.
func (s *AccountService) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return s.accounts.GetByEmail(ctx, NormalizeEmail(email))
}

// UpdateProfile updates an account's name and, when newPassword is
// non-blank, its password. A blank password means "no change" and skips
// the length check.
func (s *AccountService) UpdateProfile(ctx context.Context, id ulid.ULID, name, newPassword string) (*Account, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if newPassword != "" {
		if err := ValidatePassword(newPassword); err != nil {
			return nil, err
		}
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account.Name = name
	if newPassword != "" {
		digest, hashErr := s.hasher.Hash(newPassword)
		if hashErr != nil {
			return nil, oops.Code("IDENTITY_UPDATE_FAILED").
				With("operation", "hash password").
				Wrap(hashErr)
		}
		account.PasswordDigest = digest
	}
	account.UpdatedAt = time.Now()

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Authenticate verifies email and password credentials, returning the
// account on success or an error wrapping ErrNotFound when either the
// account is missing or the password does not match.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	account, err := s.accounts.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(account.PasswordDigest, password) {
		return nil, oops.Code("IDENTITY_INVALID_CREDENTIALS").
			Errorf("invalid email or password")
	}
	return account, nil
}

// Delete removes an account. The storage layer cascades deletion of the
// account's content items and of follow relations where it appears as
// follower or followed.
func (s *AccountService) Delete(ctx context.Context, id ulid.ULID) error {
	return s.accounts.Delete(ctx, id)
}
