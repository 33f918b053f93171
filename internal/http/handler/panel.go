package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/dto"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

type PanelHandler struct {
	panel service.PanelService
}

func NewPanelHandler(panel service.PanelService) *PanelHandler {
	return &PanelHandler{panel: panel}
}

func (h *PanelHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AddPanelParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: identifier is required"})
		return
	}

	if err := h.panel.Add(ctx, req.Identifier); err != nil {
		if errors.Is(err, service.ErrEmptyIdentifier) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(ctx, "failed to add panel participant", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add panel participant"})
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns every participant, oldest response first (admin only).
func (h *PanelHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.panel.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list panel participants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list panel participants"})
		return
	}

	c.JSON(http.StatusOK, dto.PanelistsResponse{Panelists: entries})
}
