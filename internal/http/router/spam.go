package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
)

func SpamRouter(rg *gin.RouterGroup, h *handler.SpamHandler) {
	rg.POST("/check", h.Check)
}
