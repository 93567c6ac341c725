// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

//go:build integration

package integration_test

import (
	"errors"
	"fmt"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/quillfeed/quillfeed/internal/feed"
	"github.com/quillfeed/quillfeed/internal/identity"
)

var accountSeq atomic.Int64

// registerAccount creates a fresh activated-or-not account with a unique
// email for spec isolation.
func registerAccount(name string) (*identity.Account, string) {
	email := fmt.Sprintf("%s-%d@example.com", name, accountSeq.Add(1))
	account, token, err := env.Registrar.Register(env.ctx, name, email, "password")
	Expect(err).NotTo(HaveOccurred())
	return account, token
}

var _ = Describe("Account lifecycle", func() {
	It("registers, activates, and authenticates an account", func() {
		account, token := registerAccount("Alice")
		Expect(account.Activated).To(BeFalse())

		By("sending the activation email")
		Expect(env.Activation.SendActivationEmail(env.ctx, account, token)).To(Succeed())
		Expect(env.Mailer.sent).NotTo(BeEmpty())
		Expect(env.Mailer.sent[len(env.Mailer.sent)-1].token).To(Equal(token))

		By("confirming with the token")
		activated, err := env.Activation.Confirm(env.ctx, account.Email, token)
		Expect(err).NotTo(HaveOccurred())
		Expect(activated.Activated).To(BeTrue())
		Expect(activated.ActivatedAt).NotTo(BeNil())

		By("authenticating with email and password")
		authed, err := env.Registrar.Authenticate(env.ctx, account.Email, "password")
		Expect(err).NotTo(HaveOccurred())
		Expect(authed.ID).To(Equal(account.ID))
		Expect(authed.Activated).To(BeTrue())
	})

	It("rejects a second confirmation of the same token", func() {
		account, token := registerAccount("Bob")

		_, err := env.Activation.Confirm(env.ctx, account.Email, token)
		Expect(err).NotTo(HaveOccurred())

		_, err = env.Activation.Confirm(env.ctx, account.Email, token)
		Expect(err).To(MatchError(identity.ErrActivationMismatch))
	})

	It("enforces case-insensitive email uniqueness", func() {
		_, _, err := env.Registrar.Register(env.ctx, "Carol", "CAROL-DUP@EXAMPLE.COM", "password")
		Expect(err).NotTo(HaveOccurred())

		_, _, err = env.Registrar.Register(env.ctx, "Carol Dup", "carol-dup@example.com", "password")
		Expect(err).To(MatchError(identity.ErrEmailTaken))
	})

	It("round-trips remember-me sessions", func() {
		account, _ := registerAccount("Dave")

		token, err := env.Sessions.Login(env.ctx, account)
		Expect(err).NotTo(HaveOccurred())

		By("reloading from storage and verifying the candidate")
		stored, err := env.Accounts.GetByID(env.ctx, account.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.RememberDigest).NotTo(BeNil())
		Expect(env.Sessions.IsRemembered(stored, token)).To(BeTrue())
		Expect(env.Sessions.IsRemembered(stored, "forged-token")).To(BeFalse())

		By("logging out clears the stored digest")
		Expect(env.Sessions.Logout(env.ctx, account)).To(Succeed())
		cleared, err := env.Accounts.GetByID(env.ctx, account.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(cleared.RememberDigest).To(BeNil())
		Expect(env.Sessions.IsRemembered(cleared, token)).To(BeFalse())
	})
})

var _ = Describe("Follow graph", func() {
	It("follows, checks, and unfollows", func() {
		alice, _ := registerAccount("Alice")
		bob, _ := registerAccount("Bob")

		Expect(env.Graph.Follow(env.ctx, alice.ID, bob.ID)).To(Succeed())

		following, err := env.Graph.IsFollowing(env.ctx, alice.ID, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(following).To(BeTrue())

		By("the reverse direction is not implied")
		reverse, err := env.Graph.IsFollowing(env.ctx, bob.ID, alice.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(reverse).To(BeFalse())

		By("membership lists reflect the edge")
		followers, err := env.Graph.Followers(env.ctx, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(followers).To(HaveLen(1))
		Expect(followers[0].ID).To(Equal(alice.ID))

		followingList, err := env.Graph.Following(env.ctx, alice.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(followingList).To(HaveLen(1))
		Expect(followingList[0].ID).To(Equal(bob.ID))

		By("unfollowing removes the edge")
		Expect(env.Graph.Unfollow(env.ctx, alice.ID, bob.ID)).To(Succeed())
		following, err = env.Graph.IsFollowing(env.ctx, alice.ID, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(following).To(BeFalse())
	})

	It("treats duplicate follows as idempotent", func() {
		alice, _ := registerAccount("Alice")
		bob, _ := registerAccount("Bob")

		Expect(env.Graph.Follow(env.ctx, alice.ID, bob.ID)).To(Succeed())
		Expect(env.Graph.Follow(env.ctx, alice.ID, bob.ID)).To(Succeed())

		followers, err := env.Graph.Followers(env.ctx, bob.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(followers).To(HaveLen(1))
	})

	It("treats unfollow of an absent relation as a no-op", func() {
		alice, _ := registerAccount("Alice")
		bob, _ := registerAccount("Bob")

		Expect(env.Graph.Unfollow(env.ctx, alice.ID, bob.ID)).To(Succeed())
	})

	It("rejects self-follow", func() {
		alice, _ := registerAccount("Alice")

		err := env.Graph.Follow(env.ctx, alice.ID, alice.ID)
		var verr *identity.ValidationError
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Field).To(Equal("followed_id"))
	})
})

var _ = Describe("Feed composition", func() {
	It("merges own and followed content, most recent first", func() {
		alice, _ := registerAccount("Alice")
		bob, _ := registerAccount("Bob")
		carol, _ := registerAccount("Carol")

		Expect(env.Graph.Follow(env.ctx, alice.ID, bob.ID)).To(Succeed())

		post := func(author *identity.Account, body string) *feed.ContentItem {
			item, err := feed.NewContentItem(author.ID, body)
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Content.Create(env.ctx, item)).To(Succeed())
			return item
		}

		post(alice, "alice first")
		post(bob, "bob first")
		post(carol, "carol only")
		latest := post(bob, "bob second")

		items, err := env.Composer.Feed(env.ctx, alice.ID, 0, 0)
		Expect(err).NotTo(HaveOccurred())

		bodies := make([]string, len(items))
		for i, item := range items {
			bodies[i] = item.Body
		}
		Expect(bodies).To(ContainElements("alice first", "bob first", "bob second"))
		Expect(bodies).NotTo(ContainElement("carol only"))
		Expect(items[0].ID).To(Equal(latest.ID))
	})

	It("paginates with limit and offset", func() {
		alice, _ := registerAccount("Alice")

		for i := range 5 {
			item, err := feed.NewContentItem(alice.ID, fmt.Sprintf("post %d", i))
			Expect(err).NotTo(HaveOccurred())
			Expect(env.Content.Create(env.ctx, item)).To(Succeed())
		}

		page1, err := env.Composer.Feed(env.ctx, alice.ID, 2, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(page1).To(HaveLen(2))

		page2, err := env.Composer.Feed(env.ctx, alice.ID, 2, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(page2).To(HaveLen(2))
		Expect(page2[0].ID).NotTo(Equal(page1[0].ID))
	})

	It("reflects unfollow immediately", func() {
		alice, _ := registerAccount("Alice")
		bob, _ := registerAccount("Bob")

		Expect(env.Graph.Follow(env.ctx, alice.ID, bob.ID)).To(Succeed())

		item, err := feed.NewContentItem(bob.ID, "bob content")
		Expect(err).NotTo(HaveOccurred())
		Expect(env.Content.Create(env.ctx, item)).To(Succeed())

		items, err := env.Composer.Feed(env.ctx, alice.ID, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(1))

		Expect(env.Graph.Unfollow(env.ctx, alice.ID, bob.ID)).To(Succeed())

		items, err = env.Composer.Feed(env.ctx, alice.ID, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(BeEmpty())
	})
})

var _ = Describe("Account deletion", func() {
	It("cascades to content and follow relations", func() {
		alice, _ := registerAccount("Alice")
		bob, _ := registerAccount("Bob")

		Expect(env.Graph.Follow(env.ctx, alice.ID, bob.ID)).To(Succeed())
		Expect(env.Graph.Follow(env.ctx, bob.ID, alice.ID)).To(Succeed())

		item, err := feed.NewContentItem(bob.ID, "bob content")
		Expect(err).NotTo(HaveOccurred())
		Expect(env.Content.Create(env.ctx, item)).To(Succeed())

		By("deleting bob")
		Expect(env.Registrar.Delete(env.ctx, bob.ID)).To(Succeed())

		By("bob's content is gone")
		_, err = env.Content.GetByID(env.ctx, item.ID)
		Expect(err).To(MatchError(feed.ErrNotFound))

		By("follow relations in both directions are gone")
		following, err := env.Graph.Following(env.ctx, alice.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(following).To(BeEmpty())

		followers, err := env.Graph.Followers(env.ctx, alice.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(followers).To(BeEmpty())
	})
})
