package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
)

func IssueRouter(rg *gin.RouterGroup, h *handler.IssueHandler) {
	rg.POST("", h.Create)
	rg.POST("/prefill", h.Prefill)
	rg.GET("/config", h.Config)
}
