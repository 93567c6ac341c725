// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

// Package postgres implements the feed repositories using PostgreSQL.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/feed"
	"github.com/quillfeed/quillfeed/internal/identity"
)

// pool is the subset of pgxpool.Pool the repositories use. pgxmock's pool
// satisfies it for unit tests.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FollowRepository implements feed.FollowRepository using PostgreSQL.
type FollowRepository struct {
	pool pool
}

// NewFollowRepository creates a new FollowRepository.
func NewFollowRepository(pool pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

// Create inserts the relation. ON CONFLICT DO NOTHING makes inserting an
// existing pair idempotent success.
func (r *FollowRepository) Create(ctx context.Context, follow *feed.Follow) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`,
		follow.FollowerID.String(),
		follow.FollowedID.String(),
		follow.CreatedAt,
	)
	if err != nil {
		return oops.Code("FOLLOW_INSERT_FAILED").
			With("operation", "insert follow").
			With("follower_id", follow.FollowerID.String()).
			With("followed_id", follow.FollowedID.String()).
			Wrap(err)
	}
	return nil
}

// Delete removes the relation. Absent relations delete zero rows, which
// is not an error.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followedID ulid.ULID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM follows
		WHERE follower_id = $1 AND followed_id = $2
	`, followerID.String(), followedID.String())
	if err != nil {
		return oops.Code("FOLLOW_DELETE_FAILED").
			With("operation", "delete follow").
			With("follower_id", followerID.String()).
			With("followed_id", followedID.String()).
			Wrap(err)
	}
	return nil
}

// Exists reports whether follower currently follows followed.
func (r *FollowRepository) Exists(ctx context.Context, followerID, followedID ulid.ULID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM follows
			WHERE follower_id = $1 AND followed_id = $2
		)
	`, followerID.String(), followedID.String()).Scan(&exists)
	if err != nil {
		return false, oops.Code("FOLLOW_EXISTS_FAILED").
			With("operation", "check follow exists").
			With("follower_id", followerID.String()).
			With("followed_id", followedID.String()).
			Wrap(err)
	}
	return exists, nil
}

// Followers returns the accounts following the given account.
func (r *FollowRepository) Followers(ctx context.Context, accountID ulid.ULID) ([]*identity.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.name, a.email, a.password_digest, a.remember_digest,
		       a.activation_digest, a.activated, a.activated_at, a.created_at, a.updated_at
		FROM accounts a
		JOIN follows f ON f.follower_id = a.id
		WHERE f.followed_id = $1
		ORDER BY f.created_at DESC
	`, accountID.String())
	if err != nil {
		return nil, oops.Code("FOLLOWERS_QUERY_FAILED").
			With("operation", "query followers").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// Following returns the accounts the given account follows.
func (r *FollowRepository) Following(ctx context.Context, accountID ulid.ULID) ([]*identity.Account, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.name, a.email, a.password_digest, a.remember_digest,
		       a.activation_digest, a.activated, a.activated_at, a.created_at, a.updated_at
		FROM accounts a
		JOIN follows f ON f.followed_id = a.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`, accountID.String())
	if err != nil {
		return nil, oops.Code("FOLLOWING_QUERY_FAILED").
			With("operation", "query following").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// FollowedIDs returns the followed-account ids in one consistent read.
func (r *FollowRepository) FollowedIDs(ctx context.Context, accountID ulid.ULID) ([]ulid.ULID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT followed_id FROM follows WHERE follower_id = $1
	`, accountID.String())
	if err != nil {
		return nil, oops.Code("FOLLOWED_IDS_QUERY_FAILED").
			With("operation", "query followed ids").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	defer rows.Close()

	var ids []ulid.ULID
	for rows.Next() {
		var idStr string
		if err := rows.Scan(&idStr); err != nil {
			return nil, oops.Code("FOLLOWED_IDS_SCAN_FAILED").Wrap(err)
		}
		id, err := ulid.Parse(idStr)
		if err != nil {
			return nil, oops.Code("FOLLOW_CORRUPT_ID").With("id", idStr).Wrap(err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("FOLLOWED_IDS_ITERATE_FAILED").Wrap(err)
	}
	return ids, nil
}

// collectAccounts scans account rows into a slice.
func collectAccounts(rows pgx.Rows) ([]*identity.Account, error) {
	var accounts []*identity.Account
	for rows.Next() {
		var (
			account identity.Account
			idStr   string
		)
		err := rows.Scan(
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
			return nil, oops.Code("ACCOUNT_SCAN_FAILED").Wrap(err)
		}
		account.ID, err = ulid.Parse(idStr)
		if err != nil {
			return nil, oops.Code("ACCOUNT_CORRUPT_ID").With("id", idStr).Wrap(err)
		}
		accounts = append(accounts, &account)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("ACCOUNT_ITERATE_FAILED").Wrap(err)
	}
	return accounts, nil
}
