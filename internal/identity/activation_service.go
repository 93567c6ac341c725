// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"context"
	"errors"
	"time"

	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/observability"
)

// ActivationService handles account activation: dispatching the activation
// email after registration and confirming the one-time token.
type ActivationService struct {
	accounts AccountRepository
	hasher   Hasher
	mailer   Mailer
}

// NewActivationService creates an ActivationService.
func NewActivationService(accounts AccountRepository, hasher Hasher, mailer Mailer) (*ActivationService, error) {
	if accounts == nil {
		return nil, oops.Errorf("accounts repository is required")
	}
	if hasher == nil {
		return nil, oops.Errorf("password hasher is required")
	}
	if mailer == nil {
		return nil, oops.Errorf("mailer is required")
	}
	return &ActivationService{accounts: accounts, hasher: hasher, mailer: mailer}, nil
}

// SendActivationEmail hands the account's activation token to the mail
// collaborator. Single attempt; delivery failures propagate unchanged and
// are not retried here.
func (s *ActivationService) SendActivationEmail(ctx context.Context, account *Account, token string) error {
	if token == "" {
		return oops.Code("ACTIVATION_TOKEN_EMPTY").Errorf("activation token cannot be empty")
	}
	if err := s.mailer.SendActivation(ctx, account.Email, account.ID, token); err != nil {
		return oops.Code("ACTIVATION_SEND_FAILED").
			With("account_id", account.ID.String()).
			Wrap(err)
	}
	return nil
}

// Confirm verifies the candidate activation token for the account
// registered under email and, on success, activates the account with a
// single atomic update. An unknown email, an already-activated account, or
// a token mismatch all return an error wrapping ErrActivationMismatch with
// no state change.
func (s *ActivationService) Confirm(ctx context.Context, email, candidate string) (*Account, error) {
	account, err := s.accounts.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			observability.RecordActivation("mismatch")
			return nil, oops.Code("ACTIVATION_MISMATCH").Wrap(ErrActivationMismatch)
		}
		return nil, oops.Code("ACTIVATION_CONFIRM_FAILED").
			With("operation", "get account by email").
			Wrap(err)
	}

	if account.Activated || !account.Authenticated(DigestActivation, candidate, s.hasher) {
		observability.RecordActivation("mismatch")
		return nil, oops.Code("ACTIVATION_MISMATCH").
			With("account_id", account.ID.String()).
			Wrap(ErrActivationMismatch)
	}

	now := time.Now()
	if err := s.accounts.Activate(ctx, account.ID, now); err != nil {
		return nil, oops.Code("ACTIVATION_CONFIRM_FAILED").
			With("operation", "persist activation").
			With("account_id", account.ID.String()).
			Wrap(err)
	}
	account.Activate(now)

	observability.RecordActivation("confirmed")
	return account, nil
}
