package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
)

func LinkRouter(rg *gin.RouterGroup, h *handler.LinkHandler) {
	rg.POST("/feedback", h.Feedback)
}
