package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/dto"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/issue_tracker"
)

type IssueHandler struct {
	tracker issue_tracker.IssueTrackerService
	gate    *issue_tracker.Gate
}

func NewIssueHandler(tracker issue_tracker.IssueTrackerService, gate *issue_tracker.Gate) *IssueHandler {
	return &IssueHandler{tracker: tracker, gate: gate}
}

// Create files an issue directly, without saving any feedback record.
func (h *IssueHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: repo_owner and repo_name are required"})
		return
	}

	url, err := h.tracker.Submit(ctx, issue_tracker.IssueRequest{
		Owner:        req.RepoOwner,
		Repo:         req.RepoName,
		Title:        req.Title,
		Body:         req.Body,
		Template:     req.Template,
		Label:        req.Label,
		SpamKeywords: req.SpamKeywords,
	})
	if err != nil {
		writeIssueError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateIssueResponse{IssueURL: url})
}

func (h *IssueHandler) Prefill(c *gin.Context) {
	var req dto.PrefillIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	url, err := h.tracker.PrefillURL(issue_tracker.PrefillRequest{
		Owner:    req.RepoOwner,
		Repo:     req.RepoName,
		Title:    req.Title,
		Body:     req.Body,
		Template: req.Template,
		Label:    req.Label,
	})
	if err != nil {
		writeIssueError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.URLResponse{URL: url})
}

// Config reports whether issues can be filed. With owner and repo query
// parameters it also probes that the repository is visible to the token.
func (h *IssueHandler) Config(c *gin.Context) {
	ctx := c.Request.Context()

	resp := dto.IssueConfigResponse{
		Valid:         h.tracker.HasCredentials(),
		DefaultOwner:  h.gate.DefaultOwner(),
		AllowedOwners: h.gate.AllowedOwners(),
	}

	owner, repo := c.Query("owner"), c.Query("repo")
	if resp.Valid && owner != "" && repo != "" {
		exists, err := h.tracker.RepoExists(ctx, owner, repo)
		if err != nil && !errors.Is(err, issue_tracker.ErrOwnerNotAllowed) {
			slog.WarnContext(ctx, "repository probe failed", "error", err, "owner", owner, "repo", repo)
		}
		resp.RepoExists = &exists
	}

	c.JSON(http.StatusOK, resp)
}

func writeIssueError(c *gin.Context, err error) {
	var remote *issue_tracker.RemoteError
	switch {
	case errors.Is(err, issue_tracker.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, issue_tracker.ErrOwnerNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, issue_tracker.ErrEmptyIssue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, issue_tracker.ErrSpam):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &remote):
		c.JSON(http.StatusBadGateway, gin.H{"error": remote.Error(), "remote_status": remote.Status})
	default:
		slog.ErrorContext(c.Request.Context(), "issue request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "issue request failed"})
	}
}
