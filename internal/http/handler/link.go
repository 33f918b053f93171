package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/dto"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

type LinkHandler struct {
	links *service.LinkBuilder
}

func NewLinkHandler(links *service.LinkBuilder) *LinkHandler {
	return &LinkHandler{links: links}
}

func (h *LinkHandler) Feedback(c *gin.Context) {
	var req dto.FeedbackLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	link := h.links.Build(c.Request.Context(), service.FeedbackLinkParams{
		Context:    req.Context,
		Interview:  req.Interview,
		Owner:      req.GithubUser,
		Repo:       req.GithubRepo,
		Variable:   req.Variable,
		QuestionID: req.QuestionID,
		Version:    req.PackageVersion,
		Filename:   req.Filename,
		SessionID:  req.SessionID,
	})

	c.JSON(http.StatusOK, dto.URLResponse{URL: link})
}
