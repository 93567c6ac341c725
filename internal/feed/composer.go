// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package feed

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/observability"
)

// Composer derives the personalized feed for an account: its own content
// plus content from every account it follows, most recent first.
type Composer struct {
	follows FollowRepository
	content ContentRepository
}

// NewComposer creates a Composer.
func NewComposer(follows FollowRepository, content ContentRepository) (*Composer, error) {
	if follows == nil {
		return nil, oops.Errorf("follows repository is required")
	}
	if content == nil {
		return nil, oops.Errorf("content repository is required")
	}
	return &Composer{follows: follows, content: content}, nil
}

// Feed composes the feed for an account. The followed-id set is
// materialized once per call (plus the account itself) and the content
// range query runs against that snapshot, so a concurrent follow or
// unfollow never yields a partially-updated graph. Each call recomputes
// from current state; nothing is cached between calls.
//
// A limit of 0 means no limit.
func (c *Composer) Feed(ctx context.Context, accountID ulid.ULID, limit, offset int) ([]*ContentItem, error) {
	followedIDs, err := c.follows.FollowedIDs(ctx, accountID)
	if err != nil {
		return nil, oops.Code("FEED_COMPOSE_FAILED").
			With("operation", "materialize followed ids").
			With("account_id", accountID.String()).
			Wrap(err)
	}

	authorIDs := append(followedIDs, accountID)

	items, err := c.content.ListByAuthors(ctx, authorIDs, limit, offset)
	if err != nil {
		return nil, oops.Code("FEED_COMPOSE_FAILED").
			With("operation", "list content by authors").
			With("account_id", accountID.String()).
			With("author_count", len(authorIDs)).
			Wrap(err)
	}

	observability.RecordFeedComposition()
	return items, nil
}
