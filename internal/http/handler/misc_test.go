package handler_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/core/config"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/middleware"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
)

var _ = Describe("ReactionHandler", func() {
	var (
		router    *gin.Engine
		reactions *mockReactionService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		reactions = &mockReactionService{}
		h := handler.NewReactionHandler(reactions)
		router.POST("/reactions", h.Record)
		router.GET("/reactions", middleware.RequireAdminAPIKey(adminKey), h.Aggregate)
	})

	It("records a neutral reaction", func() {
		var got service.RecordReactionParams
		reactions.recordFn = func(_ context.Context, params service.RecordReactionParams) error {
			got = params
			return nil
		}
		w := doJSON(router, http.MethodPost, "/reactions", map[string]any{
			"reaction": 0,
			"context":  map[string]string{"filename": "f.yml", "package": "docassemble.X"},
		}, nil)
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(got.Score).To(BeZero())
		Expect(got.Context.Package).To(Equal("docassemble.X"))
	})

	It("rejects a score the store cannot hold", func() {
		reactions.recordFn = func(context.Context, service.RecordReactionParams) error {
			return service.ErrScoreOutOfRange
		}
		w := doJSON(router, http.MethodPost, "/reactions", map[string]any{"reaction": int64(1)<<32 + 1}, nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("out of range"))
	})

	It("requires a reaction", func() {
		w := doJSON(router, http.MethodPost, "/reactions", map[string]any{"interview": "f.yml"}, nil)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns aggregates to admins", func() {
		reactions.aggregateFn = func(_ context.Context, interview string) ([]model.ReactionSummary, error) {
			Expect(interview).To(Equal("unittest"))
			v := "1.0.0"
			return []model.ReactionSummary{{Interview: &interview, Version: &v, Count: 2, Average: 0}}, nil
		}
		w := doJSON(router, http.MethodGet, "/reactions?interview=unittest", nil, adminHeaders)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"reactions":[{"interview":"unittest","version":"1.0.0","count":2,"average":0}]}`))
	})
})

var _ = Describe("PanelHandler", func() {
	var (
		router *gin.Engine
		panel  *mockPanelService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		panel = &mockPanelService{}
		h := handler.NewPanelHandler(panel)
		router.POST("/panel", h.Add)
		router.GET("/panel", middleware.RequireAdminAPIKey(adminKey), h.List)
	})

	It("adds a participant", func() {
		var got string
		panel.addFn = func(_ context.Context, identifier string) error {
			got = identifier
			return nil
		}
		w := doJSON(router, http.MethodPost, "/panel", map[string]string{"identifier": "a@example.com"}, nil)
		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(got).To(Equal("a@example.com"))
	})

	It("returns 500 when redis fails", func() {
		panel.addFn = func(context.Context, string) error { return errors.New("zadd: connection refused") }
		w := doJSON(router, http.MethodPost, "/panel", map[string]string{"identifier": "a@example.com"}, nil)
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("lists participants for admins", func() {
		at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		panel.listFn = func(context.Context) ([]model.PanelEntry, error) {
			return []model.PanelEntry{{Identifier: "a@example.com", RespondedAt: at}}, nil
		}
		w := doJSON(router, http.MethodGet, "/panel", nil, adminHeaders)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"panelists":[{"identifier":"a@example.com","responded_at":"2024-01-02T03:04:05Z"}]}`))
	})
})

var _ = Describe("SpamHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		h := handler.NewSpamHandler(spam.NewClassifier(config.SpamConfig{}, nil))
		router.POST("/spam/check", h.Check)
	})

	DescribeTable("classifies bodies",
		func(body map[string]any, want string) {
			w := doJSON(router, http.MethodPost, "/spam/check", body, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(want))
		},
		Entry("keyword", map[string]any{"body": "earn money online"}, `{"spam":true,"reason":"keyword"}`),
		Entry("url", map[string]any{"body": "see https://"}, `{"spam":true,"reason":"url"}`),
		Entry("empty", map[string]any{"body": ""}, `{"spam":false,"reason":"none"}`),
		Entry("caller keyword", map[string]any{"body": "cheap flights", "keywords": []string{"cheap flights"}}, `{"spam":true,"reason":"keyword"}`),
		Entry("clean, remote disabled", map[string]any{"body": "page 3 is confusing", "use_remote_check": false}, `{"spam":false,"reason":"none"}`),
	)
})

var _ = Describe("LinkHandler", func() {
	It("returns a feedback link", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		links := service.NewLinkBuilder(config.InterviewConfig{BaseURL: "https://forms.example.org"}, "", nil)
		router.POST("/links/feedback", handler.NewLinkHandler(links).Feedback)

		w := doJSON(router, http.MethodPost, "/links/feedback", map[string]any{"variable": "x"}, nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("https://forms.example.org/interview?"))
		Expect(w.Body.String()).To(ContainSubstring("github_repo=demo"))
	})
})

var _ = Describe("RequireAdminAPIKey", func() {
	It("returns 503 when no key is configured", func() {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/x", middleware.RequireAdminAPIKey(""), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := doJSON(router, http.MethodGet, "/x", nil, adminHeaders)
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})
