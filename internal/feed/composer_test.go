// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package feed_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/quillfeed/quillfeed/internal/feed"
	"github.com/quillfeed/quillfeed/internal/feed/mocks"
	"github.com/quillfeed/quillfeed/pkg/errutil"
)

func TestNewComposer_NilDependencies(t *testing.T) {
	c, err := feed.NewComposer(nil, mocks.NewMockContentRepository(t))
	require.Error(t, err)
	assert.Nil(t, c)

	c, err = feed.NewComposer(mocks.NewMockFollowRepository(t), nil)
	require.Error(t, err)
	assert.Nil(t, c)
}

func TestComposer_Feed(t *testing.T) {
	ctx := context.Background()

	t.Run("includes own and followed content", func(t *testing.T) {
		follows := mocks.NewMockFollowRepository(t)
		content := mocks.NewMockContentRepository(t)
		c, err := feed.NewComposer(follows, content)
		require.NoError(t, err)

		self := ulid.Make()
		followed := ulid.Make()

		items := []*feed.ContentItem{
			{ID: ulid.Make(), AuthorID: followed, Body: "from followed", CreatedAt: time.Now()},
			{ID: ulid.Make(), AuthorID: self, Body: "from self", CreatedAt: time.Now().Add(-time.Minute)},
		}

		follows.On("FollowedIDs", ctx, self).Return([]ulid.ULID{followed}, nil)
		content.On("ListByAuthors", ctx, []ulid.ULID{followed, self}, 20, 0).Return(items, nil)

		got, err := c.Feed(ctx, self, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("own content only when following nobody", func(t *testing.T) {
		follows := mocks.NewMockFollowRepository(t)
		content := mocks.NewMockContentRepository(t)
		c, err := feed.NewComposer(follows, content)
		require.NoError(t, err)

		self := ulid.Make()

		follows.On("FollowedIDs", ctx, self).Return(nil, nil)
		content.On("ListByAuthors", ctx, []ulid.ULID{self}, 0, 0).Return(nil, nil)

		got, err := c.Feed(ctx, self, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("graph read failure wrapped", func(t *testing.T) {
		follows := mocks.NewMockFollowRepository(t)
		content := mocks.NewMockContentRepository(t)
		c, err := feed.NewComposer(follows, content)
		require.NoError(t, err)

		self := ulid.Make()
		follows.On("FollowedIDs", ctx, self).Return(nil, errors.New("connection reset"))

		got, err := c.Feed(ctx, self, 20, 0)
		require.Error(t, err)
		assert.Nil(t, got)
		errutil.AssertErrorCode(t, err, "FEED_COMPOSE_FAILED")
		errutil.AssertErrorContext(t, err, "operation", "materialize followed ids")
	})

	t.Run("content read failure wrapped", func(t *testing.T) {
		follows := mocks.NewMockFollowRepository(t)
		content := mocks.NewMockContentRepository(t)
		c, err := feed.NewComposer(follows, content)
		require.NoError(t, err)

		self := ulid.Make()
		follows.On("FollowedIDs", ctx, self).Return([]ulid.ULID{ulid.Make()}, nil)
		content.On("ListByAuthors", ctx, mock.Anything, 20, 0).Return(nil, errors.New("connection reset"))

		got, err := c.Feed(ctx, self, 20, 0)
		require.Error(t, err)
		assert.Nil(t, got)
		errutil.AssertErrorCode(t, err, "FEED_COMPOSE_FAILED")
		errutil.AssertErrorContext(t, err, "operation", "list content by authors")
	})
}
