package service_test

import (
	"context"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

var _ = Describe("LinkBuilder", func() {
	var (
		ctx          context.Context
		interviewCfg config.InterviewConfig
		versions     service.VersionLookup
	)

	parse := func(link string) url.Values {
		u, err := url.Parse(link)
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Scheme + "://" + u.Host + u.Path).To(Equal("https://forms.example.org/interview"))
		return u.Query()
	}

	BeforeEach(func() {
		ctx = context.Background()
		interviewCfg = config.InterviewConfig{
			BaseURL:           "https://forms.example.org",
			FeedbackInterview: config.DefaultFeedbackInterview,
		}
		versions = service.StaticVersions(map[string]string{"docassemble.AssemblyLine": "3.2.0"})
	})

	It("falls back to the demo repository with nothing to go on", func() {
		q := parse(service.NewLinkBuilder(interviewCfg, "", versions).Build(ctx, service.FeedbackLinkParams{}))
		Expect(q.Get("github_user")).To(Equal("suffolklitlab-issues"))
		Expect(q.Get("github_repo")).To(Equal("demo"))
		Expect(q.Get("i")).To(Equal(config.DefaultFeedbackInterview))
		Expect(q.Get("reset")).To(Equal("1"))
		Expect(q).NotTo(HaveKey("variable"))
		Expect(q).NotTo(HaveKey("session_id"))
	})

	It("derives everything from the interview context", func() {
		b := service.NewLinkBuilder(interviewCfg, "SuffolkLITLab", versions)
		q := parse(b.Build(ctx, service.FeedbackLinkParams{Context: &model.InterviewContext{
			Filename:   "docassemble.AssemblyLine:data/questions/intake.yml",
			Package:    "docassemble.AssemblyLine",
			Variable:   "users[0].name.first",
			QuestionID: "your name",
			SessionID:  "abc123",
		}}))
		Expect(q.Get("github_user")).To(Equal("SuffolkLITLab"))
		Expect(q.Get("github_repo")).To(Equal("docassemble-AssemblyLine"))
		Expect(q.Get("variable")).To(Equal("users[0].name.first"))
		Expect(q.Get("question_id")).To(Equal("your name"))
		Expect(q.Get("package_version")).To(Equal("3.2.0"))
		Expect(q.Get("filename")).To(Equal("docassemble.AssemblyLine:data/questions/intake.yml"))
		Expect(q.Get("session_id")).To(Equal("abc123"))
	})

	It("uses the demo repo and playground version for playground interviews", func() {
		b := service.NewLinkBuilder(interviewCfg, "suffolklitlab", versions)
		q := parse(b.Build(ctx, service.FeedbackLinkParams{Context: &model.InterviewContext{
			Package: "docassemble-playground12",
		}}))
		Expect(q.Get("github_repo")).To(Equal("demo"))
		Expect(q.Get("package_version")).To(Equal(model.PlaygroundVersion))
	})

	It("lets explicit values win over the context", func() {
		b := service.NewLinkBuilder(interviewCfg, "suffolklitlab", versions)
		q := parse(b.Build(ctx, service.FeedbackLinkParams{
			Context:    &model.InterviewContext{Package: "docassemble.AssemblyLine", Variable: "x"},
			Owner:      "CourtFormsOnline",
			Repo:       "docassemble-Forms",
			Variable:   "y",
			Version:    "9.9.9",
			Interview:  "docassemble.Custom:feedback.yml",
			SessionID:  "explicit",
			QuestionID: "q",
			Filename:   "f.yml",
		}))
		Expect(q.Get("github_user")).To(Equal("CourtFormsOnline"))
		Expect(q.Get("github_repo")).To(Equal("docassemble-Forms"))
		Expect(q.Get("variable")).To(Equal("y"))
		Expect(q.Get("package_version")).To(Equal("9.9.9"))
		Expect(q.Get("i")).To(Equal("docassemble.Custom:feedback.yml"))
		Expect(q.Get("session_id")).To(Equal("explicit"))
	})

	It("pairs an explicit repo with the default owner", func() {
		q := parse(service.NewLinkBuilder(interviewCfg, "myorg", versions).Build(ctx, service.FeedbackLinkParams{Repo: "docassemble-X"}))
		Expect(q.Get("github_user")).To(Equal("myorg"))
		Expect(q.Get("github_repo")).To(Equal("docassemble-X"))
	})

	It("falls back to the demo pair when a repo has no owner to go with", func() {
		q := parse(service.NewLinkBuilder(interviewCfg, "", versions).Build(ctx, service.FeedbackLinkParams{Repo: "docassemble-X"}))
		Expect(q.Get("github_user")).To(Equal("suffolklitlab-issues"))
		Expect(q.Get("github_repo")).To(Equal("demo"))
	})
})
