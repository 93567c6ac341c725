// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/quillfeed/quillfeed/internal/identity"
	"github.com/quillfeed/quillfeed/pkg/errutil"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := identity.NewBcryptHasher(bcrypt.MinCost)

	t.Run("produces verifiable digest", func(t *testing.T) {
		digest, err := hasher.Hash("password123")
		require.NoError(t, err)
		assert.NotEmpty(t, digest)
		assert.NotEqual(t, "password123", digest)
		assert.True(t, hasher.Verify(digest, "password123"))
	})

	t.Run("same secret produces different digests", func(t *testing.T) {
		first, err := hasher.Hash("password123")
		require.NoError(t, err)
		second, err := hasher.Hash("password123")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects empty secret", func(t *testing.T) {
		digest, err := hasher.Hash("")
		require.Error(t, err)
		assert.Empty(t, digest)
		errutil.AssertErrorCode(t, err, "IDENTITY_EMPTY_SECRET")
	})
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := identity.NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name      string
		digest    string
		candidate string
		want      bool
	}{
		{name: "matching candidate", digest: digest, candidate: "correct horse", want: true},
		{name: "wrong candidate", digest: digest, candidate: "battery staple", want: false},
		{name: "empty candidate", digest: digest, candidate: "", want: false},
		{name: "empty digest never matches", digest: "", candidate: "correct horse", want: false},
		{name: "malformed digest", digest: "not-a-bcrypt-digest", candidate: "correct horse", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Verify(tt.digest, tt.candidate))
		})
	}
}

func TestNewBcryptHasher_ClampsInvalidCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{name: "zero cost", cost: 0},
		{name: "negative cost", cost: -1},
		{name: "above max", cost: bcrypt.MaxCost + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := identity.NewBcryptHasher(tt.cost)
			digest, err := hasher.Hash("password123")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(digest))
			require.NoError(t, err)
			assert.Equal(t, identity.DefaultDigestCost, cost)
		})
	}
}
