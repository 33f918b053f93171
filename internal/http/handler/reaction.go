package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/dto"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

type ReactionHandler struct {
	reactions service.ReactionService
}

func NewReactionHandler(reactions service.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactions: reactions}
}

func (h *ReactionHandler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RecordReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: reaction is required"})
		return
	}

	err := h.reactions.Record(ctx, service.RecordReactionParams{
		Score:     *req.Reaction,
		Interview: req.Interview,
		Version:   req.Version,
		Context:   req.Context,
	})
	if errors.Is(err, service.ErrScoreOutOfRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record reaction"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Aggregate returns count and average per (interview, version) (admin only).
func (h *ReactionHandler) Aggregate(c *gin.Context) {
	ctx := c.Request.Context()

	summaries, err := h.reactions.Aggregate(ctx, c.Query("interview"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to aggregate reactions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate reactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ReactionsResponse{Reactions: summaries})
}
