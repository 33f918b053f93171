package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/dto"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service/spam"
)

type SpamClassifier interface {
	Classify(ctx context.Context, body string, opts ...spam.Option) spam.Result
}

type SpamHandler struct {
	classifier SpamClassifier
}

func NewSpamHandler(classifier SpamClassifier) *SpamHandler {
	return &SpamHandler{classifier: classifier}
}

func (h *SpamHandler) Check(c *gin.Context) {
	var req dto.SpamCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	opts := []spam.Option{spam.WithKeywords(req.Keywords...)}
	if req.UseRemoteCheck != nil && !*req.UseRemoteCheck {
		opts = append(opts, spam.WithoutRemoteCheck())
	}

	result := h.classifier.Classify(c.Request.Context(), req.Body, opts...)
	c.JSON(http.StatusOK, dto.SpamCheckResponse{Spam: result.Spam, Reason: string(result.Reason)})
}
