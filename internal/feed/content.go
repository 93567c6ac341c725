// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package feed

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/quillfeed/quillfeed/internal/identity"
)

// MaxContentLength is the maximum body length of a content item.
const MaxContentLength = 140

// ContentItem is a piece of content owned by an account.
type ContentItem struct {
	ID        ulid.ULID
	AuthorID  ulid.ULID
	Body      string
	CreatedAt time.Time
}

// NewContentItem creates a validated content item.
func NewContentItem(authorID ulid.ULID, body string) (*ContentItem, error) {
	if authorID.Compare(ulid.ULID{}) == 0 {
		return nil, &identity.ValidationError{Field: "author_id", Message: "cannot be zero"}
	}
	if strings.TrimSpace(body) == "" {
		return nil, &identity.ValidationError{Field: "body", Message: "cannot be blank"}
	}
	if len(body) > MaxContentLength {
		return nil, &identity.ValidationError{Field: "body", Message: "is too long"}
	}
	return &ContentItem{
		ID:        ulid.Make(),
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: time.Now(),
	}, nil
}

// ContentRepository manages content item persistence.
type ContentRepository interface {
	// Create stores a new content item.
	Create(ctx context.Context, item *ContentItem) error

	// GetByID retrieves a content item by ID.
	GetByID(ctx context.Context, id ulid.ULID) (*ContentItem, error)

	// ListByAuthors returns items owned by any of the given authors,
	// most recent first. A limit of 0 means no limit.
	ListByAuthors(ctx context.Context, authorIDs []ulid.ULID, limit, offset int) ([]*ContentItem, error)

	// CountByAuthor returns the number of items the account owns.
	CountByAuthor(ctx context.Context, authorID ulid.ULID) (int64, error)

	// Delete removes a content item.
	Delete(ctx context.Context, id ulid.ULID) error
}
