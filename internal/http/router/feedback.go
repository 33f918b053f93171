package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
)

// FeedbackRouter sets up feedback routes
// - saving and submitting are public (called from interviews)
// - reading and editing stored records require the admin API key
func FeedbackRouter(rg *gin.RouterGroup, admin gin.HandlerFunc, h *handler.FeedbackHandler) {
	rg.POST("", h.Save)
	rg.POST("/submit", h.Submit)

	rg.GET("", admin, h.List)
	rg.PUT("/:id/issue-url", admin, h.SetIssueURL)
	rg.POST("/:id/archive", admin, h.Archive)
}
