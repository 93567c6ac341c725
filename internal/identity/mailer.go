// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"
)

// Mailer dispatches account activation email. Implementations own message
// construction and delivery; the core neither retries nor verifies it.
type Mailer interface {
	// SendActivation delivers an activation message carrying the plaintext
	// token so the recipient can build the activation link.
	SendActivation(ctx context.Context, email string, accountID ulid.ULID, token string) error
}

// LogMailer is a Mailer that only logs the dispatch. It is the default
// wiring for CLI usage where no mail transport is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a LogMailer. A nil logger uses slog.Default.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

// SendActivation logs the activation dispatch. The token itself is not
// logged.
func (m *LogMailer) SendActivation(ctx context.Context, email string, accountID ulid.ULID, token string) error {
	m.logger.InfoContext(ctx, "activation email dispatched",
		"email", email,
		"account_id", accountID.String(),
		"token_length", len(token),
	)
	return nil
}
