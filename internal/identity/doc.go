// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

// Package identity provides the account, credential, and session core
// of QuillFeed: registration with bcrypt-hashed credentials, remember-me
// tokens, and email-based account activation.
package identity
