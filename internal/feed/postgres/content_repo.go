// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/feed"
)

// ContentRepository implements feed.ContentRepository using PostgreSQL.
type ContentRepository struct {
	pool pool
}

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(pool pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

// Create stores a new content item.
func (r *ContentRepository) Create(ctx context.Context, item *feed.ContentItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO content_items (id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4)
	`,
		item.ID.String(),
		item.AuthorID.String(),
		item.Body,
		item.CreatedAt,
	)
	if err != nil {
		return oops.Code("CONTENT_CREATE_FAILED").
			With("operation", "insert content item").
			With("author_id", item.AuthorID.String()).
			Wrap(err)
	}
	return nil
}

// GetByID retrieves a content item by ID.
func (r *ContentRepository) GetByID(ctx context.Context, id ulid.ULID) (*feed.ContentItem, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, author_id, body, created_at
		FROM content_items
		WHERE id = $1
	`, id.String())

	item, err := scanContentItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, oops.Code("CONTENT_NOT_FOUND").
			With("id", id.String()).
			Wrap(feed.ErrNotFound)
	}
	if err != nil {
		return nil, oops.Code("CONTENT_GET_FAILED").
			With("operation", "get content item").
			With("id", id.String()).
			Wrap(err)
	}
	return item, nil
}

// ListByAuthors returns items owned by any of the given authors, most
// recent first. The author-id set arrives as a single array parameter so
// the whole feed is one range query, not a per-row membership check.
func (r *ContentRepository) ListByAuthors(ctx context.Context, authorIDs []ulid.ULID, limit, offset int) ([]*feed.ContentItem, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(authorIDs))
	for i, id := range authorIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT id, author_id, body, created_at
		FROM content_items
		WHERE author_id = ANY($1)
		ORDER BY created_at DESC, id DESC
		OFFSET $2`
	args := []any{ids, offset}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, oops.Code("CONTENT_LIST_FAILED").
			With("operation", "list content by authors").
			With("author_count", len(authorIDs)).
			Wrap(err)
	}
	defer rows.Close()

	var items []*feed.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, oops.Code("CONTENT_SCAN_FAILED").Wrap(err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, oops.Code("CONTENT_ITERATE_FAILED").Wrap(err)
	}
	return items, nil
}

// CountByAuthor returns the number of items the account owns.
func (r *ContentRepository) CountByAuthor(ctx context.Context, authorID ulid.ULID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM content_items WHERE author_id = $1
	`, authorID.String()).Scan(&count)
	if err != nil {
		return 0, oops.Code("CONTENT_COUNT_FAILED").
			With("operation", "count content by author").
			With("author_id", authorID.String()).
			Wrap(err)
	}
	return count, nil
}

// Delete removes a content item.
func (r *ContentRepository) Delete(ctx context.Context, id ulid.ULID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM content_items WHERE id = $1`, id.String())
	if err != nil {
		return oops.Code("CONTENT_DELETE_FAILED").
			With("operation", "delete content item").
			With("id", id.String()).
			Wrap(err)
	}
	if tag.RowsAffected() == 0 {
		return oops.Code("CONTENT_NOT_FOUND").
			With("id", id.String()).
			Wrap(feed.ErrNotFound)
	}
	return nil
}

// scanContentItem scans a content item row.
func scanContentItem(row pgx.Row) (*feed.ContentItem, error) {
	var (
		item        feed.ContentItem
		idStr       string
		authorIDStr string
	)
	if err := row.Scan(&idStr, &authorIDStr, &item.Body, &item.CreatedAt); err != nil {
		return nil, err
	}

	var err error
	item.ID, err = ulid.Parse(idStr)
	if err != nil {
		return nil, oops.Code("CONTENT_CORRUPT_ID").With("id", idStr).Wrap(err)
	}
	item.AuthorID, err = ulid.Parse(authorIDStr)
	if err != nil {
		return nil, oops.Code("CONTENT_CORRUPT_ID").With("author_id", authorIDStr).Wrap(err)
	}
	return &item, nil
}
