package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
)

func ReactionRouter(rg *gin.RouterGroup, admin gin.HandlerFunc, h *handler.ReactionHandler) {
	rg.POST("", h.Record)
	rg.GET("", admin, h.Aggregate)
}
