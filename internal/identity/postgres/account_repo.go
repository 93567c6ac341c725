// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

// Package postgres implements the identity repositories using PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/identity"
)

// pool is the subset of pgxpool.Pool the repositories use. pgxmock's pool
// satisfies it for unit tests.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountRepository implements identity.AccountRepository using PostgreSQL.
type AccountRepository struct {
	pool pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// Create stores a new account. A unique violation on the lower-cased
// email surfaces as an error wrapping identity.ErrEmailTaken.
func (r *AccountRepository) Create(ctx context.Context, account *identity.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (
			id, name, email, password_digest, remember_digest,
			activation_digest, activated, activated_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		account.ID.String(),
		account.Name,
		account.Email,
		account.PasswordDigest,
		account.RememberDigest,
		account.ActivationDigest,
		account.Activated,
		account.ActivatedAt,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return oops.Code("ACCOUNT_EMAIL_TAKEN").
				With("email", account.Email).
				Wrap(identity.ErrEmailTaken)
		}
		return oops.Code("ACCOUNT_CREATE_FAILED").
			With("operation", "insert account").
			With("email", account.Email).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id ulid.ULID) (*identity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_digest, remember_digest,
		       activation_digest, activated, activated_at, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`, id.String())

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("id", id.String()).
			Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_BY_ID_FAILED").
			With("operation", "get account by id").
			With("id", id.String()).
			Wrap(err)
	}
	return account, nil
}

// GetByEmail retrieves an account by email (case-insensitive).
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*identity.Account, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_digest, remember_digest,
		       activation_digest, activated, activated_at, created_at, updated_at
		FROM accounts
		WHERE LOWER(email) = LOWER($1)
	`, email)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("ACCOUNT_NOT_FOUND").
			With("email", email).
			Wrap(identity.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("ACCOUNT_GET_BY_EMAIL_FAILED").
			With("operation", "get account by email").
			With("email", email).
			Wrap(err)
	}
	return account, nil
}

// Update updates an existing account's mutable fields.
func (r *AccountRepository) Update(ctx context.Context, account *identity.Account) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET name = $2, email = $3, password_digest = $4, updated_at = $5
		WHERE id = $1
	`,
		account.ID.String(),
		account.Name,
		account.Email,
		account.PasswordDigest,
		account.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return oops.Code("ACCOUNT_EMAIL_TAKEN").
				With("email", account.Email).
				Wrap(identity.ErrEmailTaken)
		}
		return oops.Code("ACCOUNT_UPDATE_FAILED").
			With("operation", "update account").
			With("id", account.ID.String()).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("ACCOUNT_NOT_FOUND").
			With("id", account.ID.String()).
			Wrap(identity.ErrNotFound)
	}
	return nil
}

// UpdateRememberDigest sets or clears the remember digest in one write.
func (r *AccountRepository) UpdateRememberDigest(ctx context.Context, id ulid.ULID, digest *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET remember_digest = $2, updated_at = $3
		WHERE id = $1
	`, id.String(), digest, time.Now())
	if err != nil {
		return oops.Code("ACCOUNT_REMEMBER_UPDATE_FAILED").
			With("operation", "update remember digest").
			With("id", id.String()).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("ACCOUNT_NOT_FOUND").
			With("id", id.String()).
			Wrap(identity.ErrNotFound)
	}
	return nil
}

// Activate flips the activation flag and timestamp in a single update.
func (r *AccountRepository) Activate(ctx context.Context, id ulid.ULID, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET activated = TRUE, activated_at = $2, updated_at = $2
		WHERE id = $1
	`, id.String(), at)
	if err != nil {
		return oops.Code("ACCOUNT_ACTIVATE_FAILED").
			With("operation", "activate account").
			With("id", id.String()).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("ACCOUNT_NOT_FOUND").
			With("id", id.String()).
			Wrap(identity.ErrNotFound)
	}
	return nil
}

// Delete removes an account. Follow relations and content items cascade
// via foreign keys.
func (r *AccountRepository) Delete(ctx context.Context, id ulid.ULID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id.String())
	if err != nil {
		return oops.Code("ACCOUNT_DELETE_FAILED").
			With("operation", "delete account").
			With("id", id.String()).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("ACCOUNT_NOT_FOUND").
			With("id", id.String()).
			Wrap(identity.ErrNotFound)
	}
	return nil
}

// scanAccount scans an account row.
func scanAccount(row pgx.Row) (*identity.Account, error) {
	var (
		account identity.Account
		idStr   string
	)
	err := row.Scan(
		&idStr,
		&account.Name,
		&account.Email,
		&account.PasswordDigest,
		&account.RememberDigest,
		&account.ActivationDigest,
		&account.Activated,
		&account.ActivatedAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.ID, err = ulid.Parse(idStr)
	if err != nil {
		return nil, oops.Code("ACCOUNT_CORRUPT_ID").
			With("id", idStr).
			Wrap(err)
	}
	return &account, nil
}
