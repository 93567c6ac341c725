// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"context"

	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/observability"
)

// SessionService manages remember-me sessions. There is exactly one
// remember-session slot per account: issuing a new token implicitly
// invalidates the previous one by overwriting the stored digest.
type SessionService struct {
	accounts AccountRepository
	hasher   Hasher
}

// NewSessionService creates a SessionService.
func NewSessionService(accounts AccountRepository, hasher Hasher) (*SessionService, error) {
	if accounts == nil {
		return nil, oops.Errorf("accounts repository is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	return &SessionService{accounts: accounts, hasher: hasher}, nil
}

// Login issues a remember-me token for the account, persists its digest,
// and returns the plaintext token for client-held storage. Concurrent
// logins resolve by last write wins on the stored digest.
func (s *SessionService) Login(ctx context.Context, account *Account) (string, error) {
	token, err := account.Remember(s.hasher)
	if err != nil {
		return "", oops.Code("SESSION_LOGIN_FAILED").
			With("operation", "issue remember token").
			Wrap(err)
	}

	if err := s.accounts.UpdateRememberDigest(ctx, account.ID, account.RememberDigest); err != nil {
		return "", oops.Code("SESSION_LOGIN_FAILED").
			With("operation", "persist remember digest").
			With("account_id", account.ID.String()).
			Wrap(err)
	}

	observability.RecordLogin("login")
	return token, nil
}

// IsRemembered reports whether the candidate token matches the account's
// remember digest. It is false for an absent digest, an empty candidate,
// or a mismatch; never an error.
func (s *SessionService) IsRemembered(account *Account, candidate string) bool {
	return account.Authenticated(DigestRemember, candidate, s.hasher)
}

// Logout clears the account's remembered session. Idempotent: logging out
// an account with no session is a no-op.
func (s *SessionService) Logout(ctx context.Context, account *Account) error {
	account.Forget()

	if err := s.accounts.UpdateRememberDigest(ctx, account.ID, nil); err != nil {
		return oops.Code("SESSION_LOGOUT_FAILED").
			With("operation", "clear remember digest").
			With("account_id", account.ID.String()).
			Wrap(err)
	}

	observability.RecordLogin("logout")
	return nil
}
