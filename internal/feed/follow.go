// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

// Package feed provides the social follow graph and the personalized
// content feed composed from it.
package feed

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/quillfeed/quillfeed/internal/identity"
)

// Follow is a directed edge in the social graph: the follower sees the
// followed account's content in their feed. The (follower, followed) pair
// is unique.
type Follow struct {
	FollowerID ulid.ULID
	FollowedID ulid.ULID
	CreatedAt  time.Time
}

// NewFollow creates a validated follow relation. Self-follows are
// rejected.
func NewFollow(followerID, followedID ulid.ULID) (*Follow, error) {
	if followerID.Compare(ulid.ULID{}) == 0 {
		return nil, &identity.ValidationError{Field: "follower_id", Message: "cannot be zero"}
	}
	if followedID.Compare(ulid.ULID{}) == 0 {
		return nil, &identity.ValidationError{Field: "followed_id", Message: "cannot be zero"}
	}
	if followerID.Compare(followedID) == 0 {
		return nil, &identity.ValidationError{Field: "followed_id", Message: "cannot follow yourself"}
	}
	return &Follow{
		FollowerID: followerID,
		FollowedID: followedID,
		CreatedAt:  time.Now(),
	}, nil
}

// FollowRepository manages follow relation persistence.
type FollowRepository interface {
	// Create inserts the relation. Inserting an already-existing pair is
	// idempotent success, not an error.
	Create(ctx context.Context, follow *Follow) error

	// Delete removes the relation. Deleting an absent relation is a no-op.
	Delete(ctx context.Context, followerID, followedID ulid.ULID) error

	// Exists reports whether follower currently follows followed.
	Exists(ctx context.Context, followerID, followedID ulid.ULID) (bool, error)

	// Followers returns the accounts following the given account.
	Followers(ctx context.Context, accountID ulid.ULID) ([]*identity.Account, error)

	// Following returns the accounts the given account follows.
	Following(ctx context.Context, accountID ulid.ULID) ([]*identity.Account, error)

	// FollowedIDs returns the ids of the accounts the given account
	// follows, read in a single consistent query.
	FollowedIDs(ctx context.Context, accountID ulid.ULID) ([]ulid.ULID, error)
}
