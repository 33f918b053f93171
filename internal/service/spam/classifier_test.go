package spam_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/common/llm"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
)

type fakeJudge struct {
	spam  bool
	err   error
	calls int
}

func (f *fakeJudge) IsSpam(_ context.Context, _ string) (bool, error) {
	f.calls++
	return f.spam, f.err
}

type fakeLLM struct {
	reply   string
	err     error
	lastReq llm.Request
}

func (f *fakeLLM) Complete(_ context.Context, req llm.Request) (string, error) {
	f.lastReq = req
	return f.reply, f.err
}

func (f *fakeLLM) Model() string { return "fake-model" }

var _ = Describe("Classifier", func() {
	var (
		ctx   context.Context
		judge *fakeJudge
		c     *spam.Classifier
	)

	BeforeEach(func() {
		ctx = context.Background()
		judge = &fakeJudge{}
		c = spam.NewClassifier(config.SpamConfig{Keywords: []string{"Crypto Giveaway"}}, judge)
	})

	It("accepts an empty body without consulting the judge", func() {
		Expect(c.Classify(ctx, "").Spam).To(BeFalse())
		Expect(c.Classify(ctx, "   \n").Spam).To(BeFalse())
		Expect(judge.calls).To(BeZero())
	})

	DescribeTable("heuristic rejections",
		func(body string, reason spam.Reason) {
			result := c.Classify(ctx, body)
			Expect(result.Spam).To(BeTrue())
			Expect(result.Reason).To(Equal(reason))
			Expect(judge.calls).To(BeZero())
		},
		Entry("built-in keyword", "You can EARN MONEY ONLINE with us", spam.ReasonKeyword),
		Entry("known lead generation domain", "see boostleadgeneration.com/offer", spam.ReasonKeyword),
		Entry("configured keyword, case-insensitive", "join the crypto giveaway today", spam.ReasonKeyword),
		Entry("bare https scheme", "look at https://", spam.ReasonURL),
		Entry("http link", "more at http://example.com/page", spam.ReasonURL),
		Entry("upper-case scheme", "visit HTTPS://spam.example/x", spam.ReasonURL),
		Entry("mixed-case scheme", "visit Http://spam.example", spam.ReasonURL),
	)

	It("applies caller keywords", func() {
		result := c.Classify(ctx, "Cheap essays for sale", spam.WithKeywords("essays for sale"))
		Expect(result.Spam).To(BeTrue())
		Expect(result.Match).To(Equal("essays for sale"))
	})

	It("accepts ordinary feedback when the remote check is disabled", func() {
		judge.spam = true
		result := c.Classify(ctx, "The second page asked for my address twice.", spam.WithoutRemoteCheck())
		Expect(result.Spam).To(BeFalse())
		Expect(judge.calls).To(BeZero())
	})

	It("rejects when the judge says spam", func() {
		judge.spam = true
		result := c.Classify(ctx, "Dear sir, I have a business proposal.")
		Expect(result.Spam).To(BeTrue())
		Expect(result.Reason).To(Equal(spam.ReasonModel))
		Expect(judge.calls).To(Equal(1))
	})

	It("accepts when the judge fails", func() {
		judge.spam = true
		judge.err = errors.New("connection reset")
		Expect(c.Classify(ctx, "The form crashed on submit.").Spam).To(BeFalse())
	})

	It("accepts when no judge is configured", func() {
		c = spam.NewClassifier(config.SpamConfig{}, nil)
		Expect(c.IsLikelySpam(ctx, "The form crashed on submit.")).To(BeFalse())
	})
})

var _ = Describe("LLMJudge", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	DescribeTable("interprets the model reply",
		func(reply string, want bool) {
			client := &fakeLLM{reply: reply}
			got, err := spam.NewLLMJudge(client).IsSpam(ctx, "hello")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("exact spam", "spam", true),
		Entry("spam with whitespace", " Spam\n", true),
		Entry("not spam", "not spam", false),
		Entry("anything else", "I cannot decide", false),
	)

	It("sends the feedback body with the fixed framing", func() {
		client := &fakeLLM{reply: "not spam"}
		_, err := spam.NewLLMJudge(client).IsSpam(ctx, "the form is confusing")
		Expect(err).NotTo(HaveOccurred())
		Expect(client.lastReq.UserPrompt).To(Equal("the form is confusing"))
		Expect(client.lastReq.SystemPrompt).To(ContainSubstring("guided legal interview"))
		Expect(client.lastReq.SystemPrompt).To(ContainSubstring(`"not spam"`))
	})

	It("returns the client error", func() {
		client := &fakeLLM{err: errors.New("401 unauthorized")}
		_, err := spam.NewLLMJudge(client).IsSpam(ctx, "hello")
		Expect(err).To(MatchError(ContainSubstring("401 unauthorized")))
	})
})

var _ = Describe("NewJudge", func() {
	It("falls back to NopJudge without a key", func() {
		judge := spam.NewJudge(context.Background(), config.LLMConfig{Provider: "openai"})
		_, err := judge.IsSpam(context.Background(), "x")
		Expect(err).To(MatchError(spam.ErrJudgeUnavailable))
	})

	It("builds an LLMJudge when configured", func() {
		judge := spam.NewJudge(context.Background(), config.LLMConfig{Provider: "openai", APIKey: "sk-test"})
		Expect(judge).To(BeAssignableToTypeOf(&spam.LLMJudge{}))
	})
})
