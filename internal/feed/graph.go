// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package feed

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/quillfeed/quillfeed/internal/identity"
)

// Graph provides follow and unfollow operations over the social graph.
type Graph struct {
	follows FollowRepository
}

// NewGraph creates a Graph.
func NewGraph(follows FollowRepository) (*Graph, error) {
	if follows == nil {
		return nil, oops.Errorf("follows repository is required")
	}
	return &Graph{follows: follows}, nil
}

// Follow creates the follower -> followed relation. Following an account
// already followed is idempotent success. Self-follows are rejected with
// a validation error.
func (g *Graph) Follow(ctx context.Context, followerID, followedID ulid.ULID) error {
	follow, err := NewFollow(followerID, followedID)
	if err != nil {
		return err
	}

	if err := g.follows.Create(ctx, follow); err != nil {
		return oops.Code("FOLLOW_CREATE_FAILED").
			With("follower_id", followerID.String()).
			With("followed_id", followedID.String()).
			Wrap(err)
	}
	return nil
}

// Unfollow removes the follower -> followed relation. Removing an absent
// relation is a no-op, not an error.
func (g *Graph) Unfollow(ctx context.Context, followerID, followedID ulid.ULID) error {
	if err := g.follows.Delete(ctx, followerID, followedID); err != nil {
		return oops.Code("FOLLOW_DELETE_FAILED").
			With("follower_id", followerID.String()).
			With("followed_id", followedID.String()).
			Wrap(err)
	}
	return nil
}

// IsFollowing reports whether follower currently follows followed.
func (g *Graph) IsFollowing(ctx context.Context, followerID, followedID ulid.ULID) (bool, error) {
	following, err := g.follows.Exists(ctx, followerID, followedID)
	if err != nil {
		return false, oops.Code("FOLLOW_CHECK_FAILED").
			With("follower_id", followerID.String()).
			With("followed_id", followedID.String()).
			Wrap(err)
	}
	return following, nil
}

// Followers returns the accounts following the given account.
func (g *Graph) Followers(ctx context.Context, accountID ulid.ULID) ([]*identity.Account, error) {
	accounts, err := g.follows.Followers(ctx, accountID)
	if err != nil {
		return nil, oops.Code("FOLLOWERS_LIST_FAILED").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	return accounts, nil
}

// Following returns the accounts the given account follows.
func (g *Graph) Following(ctx context.Context, accountID ulid.ULID) ([]*identity.Account, error) {
	accounts, err := g.follows.Following(ctx, accountID)
	if err != nil {
		return nil, oops.Code("FOLLOWING_LIST_FAILED").
			With("account_id", accountID.String()).
			Wrap(err)
	}
	return accounts, nil
}
