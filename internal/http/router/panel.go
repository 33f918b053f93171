package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
)

func PanelRouter(rg *gin.RouterGroup, admin gin.HandlerFunc, h *handler.PanelHandler) {
	rg.POST("", h.Add)
	rg.GET("", admin, h.List)
}
