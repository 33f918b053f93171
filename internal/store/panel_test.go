package store_test

import (
	"context"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/store"
)

var _ = Describe("PanelStore", func() {
	const key = "docassemble-GithubFeedbackForm:panel_emails"

	var (
		ctx    context.Context
		mr     *miniredis.Miniredis
		client *redis.Client
		panel  store.PanelStore
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		mr, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(mr.Close)

		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)

		panel = store.NewPanelStore(client, key)
	})

	It("lists participants ordered by response time", func() {
		base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		Expect(panel.Add(ctx, "late@example.com", base.Add(2*time.Hour))).To(Succeed())
		Expect(panel.Add(ctx, "early@example.com", base)).To(Succeed())

		entries, err := panel.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(2))
		Expect(entries[0].Identifier).To(Equal("early@example.com"))
		Expect(entries[0].RespondedAt).To(BeTemporally("~", base, time.Millisecond))
		Expect(entries[1].Identifier).To(Equal("late@example.com"))
	})

	It("keeps one entry per identifier with the latest timestamp", func() {
		first := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		second := first.Add(24 * time.Hour)

		Expect(panel.Add(ctx, "someone@example.com", first)).To(Succeed())
		Expect(panel.Add(ctx, "someone@example.com", second)).To(Succeed())

		entries, err := panel.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].RespondedAt).To(BeTemporally("~", second, time.Millisecond))
	})

	It("returns an empty list when nobody has signed up", func() {
		entries, err := panel.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("surfaces redis failures as errors", func() {
		unreachable := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		DeferCleanup(unreachable.Close)

		err := store.NewPanelStore(unreachable, key).Add(ctx, "someone@example.com", time.Now())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("zadd"))
	})
})
