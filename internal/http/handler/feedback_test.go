package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/middleware"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/model"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

const adminKey = "test-admin-key"

func doJSON(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var adminHeaders = map[string]string{"X-Admin-API-Key": adminKey}

var _ = Describe("FeedbackHandler", func() {
	var (
		router      *gin.Engine
		feedback    *mockFeedbackService
		submissions *mockSubmissionService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		feedback = &mockFeedbackService{}
		submissions = &mockSubmissionService{}
		h := handler.NewFeedbackHandler(feedback, submissions)

		admin := middleware.RequireAdminAPIKey(adminKey)
		router.POST("/feedback", h.Save)
		router.POST("/feedback/submit", h.Submit)
		router.GET("/feedback", admin, h.List)
		router.PUT("/feedback/:id/issue-url", admin, h.SetIssueURL)
		router.POST("/feedback/:id/archive", admin, h.Archive)
	})

	Describe("Save", func() {
		It("returns 201 with the new id", func() {
			var got service.SaveFeedbackParams
			feedback.saveFn = func(_ context.Context, params service.SaveFeedbackParams) (int64, error) {
				got = params
				return 12, nil
			}

			w := doJSON(router, http.MethodPost, "/feedback", map[string]any{
				"interview":  "docassemble.AssemblyLine:intake.yml",
				"session_id": "abc",
				"body":       "Great form",
			}, nil)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).To(MatchJSON(`{"id":"12"}`))
			Expect(got.Interview).To(Equal("docassemble.AssemblyLine:intake.yml"))
			Expect(*got.SessionID).To(Equal("abc"))
		})

		It("returns 422 for incomplete feedback", func() {
			feedback.saveFn = func(context.Context, service.SaveFeedbackParams) (int64, error) {
				return 0, service.ErrIncompleteFeedback
			}
			w := doJSON(router, http.MethodPost, "/feedback", map[string]any{"interview": "a.yml"}, nil)
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Describe("Submit", func() {
		It("returns 201 when the issue was filed", func() {
			submissions.submitFn = func(_ context.Context, params service.SubmitFeedbackParams) (*service.SubmissionResult, error) {
				Expect(params.Owner).To(Equal("suffolklitlab"))
				Expect(params.Label).To(Equal("feedback"))
				id := int64(5)
				url := "https://github.com/suffolklitlab/demo/issues/3"
				return &service.SubmissionResult{SubmissionID: 99, FeedbackID: &id, IssueURL: &url}, nil
			}

			w := doJSON(router, http.MethodPost, "/feedback/submit", map[string]any{
				"interview":  "a.yml",
				"body":       "hello",
				"repo_owner": "suffolklitlab",
				"repo_name":  "demo",
				"label":      "feedback",
			}, nil)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).To(MatchJSON(`{
				"submission_id": "99",
				"feedback_id": "5",
				"html_url": "https://github.com/suffolklitlab/demo/issues/3"
			}`))
		})

		It("returns 202 when only the record was saved", func() {
			submissions.submitFn = func(context.Context, service.SubmitFeedbackParams) (*service.SubmissionResult, error) {
				id := int64(5)
				return &service.SubmissionResult{FeedbackID: &id, FilingError: "no GitHub token configured"}, nil
			}
			w := doJSON(router, http.MethodPost, "/feedback/submit", map[string]any{
				"interview": "a.yml", "body": "hello", "repo_owner": "o", "repo_name": "r",
			}, nil)
			Expect(w.Code).To(Equal(http.StatusAccepted))
			Expect(w.Body.String()).To(ContainSubstring("no GitHub token configured"))
		})

		It("returns 400 without a repository", func() {
			w := doJSON(router, http.MethodPost, "/feedback/submit", map[string]any{"interview": "a.yml", "body": "x"}, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("admin routes", func() {
		It("rejects requests without the admin key", func() {
			w := doJSON(router, http.MethodGet, "/feedback", nil, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("accepts a bearer token", func() {
			feedback.listFn = func(_ context.Context, interview string, includeArchived bool) (map[int64]model.Feedback, error) {
				Expect(interview).To(Equal("a.yml"))
				Expect(includeArchived).To(BeTrue())
				return map[int64]model.Feedback{7: {ID: 7, Interview: "a.yml"}}, nil
			}
			w := doJSON(router, http.MethodGet, "/feedback?interview=a.yml&include_archived=true", nil,
				map[string]string{"Authorization": "Bearer " + adminKey})
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Feedback map[string]model.Feedback `json:"feedback"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Feedback).To(HaveKey("7"))
		})

		It("sets the issue url", func() {
			var gotID int64
			feedback.attachFn = func(_ context.Context, id int64, url string) (bool, error) {
				gotID = id
				return true, nil
			}
			w := doJSON(router, http.MethodPut, "/feedback/3/issue-url",
				map[string]string{"html_url": "https://github.com/o/r/issues/1"}, adminHeaders)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotID).To(Equal(int64(3)))
		})

		It("returns 404 when the record is missing", func() {
			feedback.archiveFn = func(context.Context, int64) (bool, error) { return false, nil }
			w := doJSON(router, http.MethodPost, "/feedback/404/archive", nil, adminHeaders)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.String()).To(MatchJSON(`{"updated":false}`))
		})

		It("rejects a malformed id", func() {
			w := doJSON(router, http.MethodPost, "/feedback/abc/archive", nil, adminHeaders)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
