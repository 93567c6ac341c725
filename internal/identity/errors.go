// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested account does not exist.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when an email address is already registered,
// compared case-insensitively. Surfaced distinctly from validation errors
// so callers can render "already taken" instead of a generic message.
var ErrEmailTaken = errors.New("email already taken")

// ErrActivationMismatch is returned when an activation attempt fails:
// unknown account, wrong token, or an account that is already activated.
// No state changes when this error is returned.
var ErrActivationMismatch = errors.New("activation mismatch")

// ValidationError represents a field-level input validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
