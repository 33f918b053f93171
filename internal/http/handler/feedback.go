package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/dto"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

type FeedbackHandler struct {
	feedback    service.FeedbackService
	submissions service.SubmissionService
}

func NewFeedbackHandler(feedback service.FeedbackService, submissions service.SubmissionService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback, submissions: submissions}
}

// Save stores feedback without filing an issue.
func (h *FeedbackHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SaveFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.feedback.Save(ctx, service.SaveFeedbackParams{
		Interview: req.Interview,
		SessionID: req.SessionID,
		Body:      req.Body,
		Template:  req.Template,
		RepoOwner: req.RepoOwner,
		RepoName:  req.RepoName,
	})
	if err != nil {
		if errors.Is(err, service.ErrIncompleteFeedback) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to save feedback", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, dto.SaveFeedbackResponse{ID: id})
}

// Submit saves the feedback and files it as a GitHub issue.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: repo_owner and repo_name are required"})
		return
	}

	result, err := h.submissions.Submit(ctx, service.SubmitFeedbackParams{
		Interview:    req.Interview,
		SessionID:    req.SessionID,
		Title:        req.Title,
		Body:         req.Body,
		Template:     req.Template,
		Owner:        req.RepoOwner,
		Repo:         req.RepoName,
		Label:        req.Label,
		SpamKeywords: req.SpamKeywords,
	})

	resp := dto.SubmitFeedbackResponse{}
	if result != nil {
		resp.SubmissionID = result.SubmissionID
		resp.IssueURL = result.IssueURL
		resp.FilingError = result.FilingError
		if result.FeedbackID != nil {
			resp.FeedbackID = ptr(strconv.FormatInt(*result.FeedbackID, 10))
		}
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}

	status := http.StatusCreated
	if resp.IssueURL == nil {
		status = http.StatusAccepted
	}
	c.JSON(status, resp)
}

// SetIssueURL links a record to an issue filed elsewhere (admin only).
func (h *FeedbackHandler) SetIssueURL(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.SetIssueURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: html_url must be a url"})
		return
	}

	updated, err := h.feedback.SetFeedbackGitHubURL(ctx, id, req.URL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to set issue url", "error", err, "feedback_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set issue url"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, dto.UpdatedResponse{Updated: false})
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedResponse{Updated: true})
}

// Archive hides a record from default listings (admin only).
func (h *FeedbackHandler) Archive(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c)
	if !ok {
		return
	}

	updated, err := h.feedback.Archive(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to archive feedback", "error", err, "feedback_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to archive feedback"})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, dto.UpdatedResponse{Updated: false})
		return
	}
	c.JSON(http.StatusOK, dto.UpdatedResponse{Updated: true})
}

// List returns stored feedback keyed by id (admin only).
func (h *FeedbackHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("include_archived", "false"))
	feedback, err := h.feedback.List(ctx, c.Query("interview"), includeArchived)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list feedback", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}

	c.JSON(http.StatusOK, dto.ListFeedbackResponse{Feedback: feedback})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback id"})
		return 0, false
	}
	return id, true
}

func ptr[T any](v T) *T {
	return &v
}
