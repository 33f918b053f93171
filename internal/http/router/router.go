package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/handler"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/http/middleware"
	"github.com/SuffolkLITLab/docassemble-GithubFeedbackForm/internal/service"
)

type RouterConfig struct {
	AdminAPIKey string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	admin := middleware.RequireAdminAPIKey(cfg.AdminAPIKey)

	v1 := router.Group("/api/v1")
	{
		feedbackHandler := handler.NewFeedbackHandler(services.Feedback(), services.Submissions())
		FeedbackRouter(v1.Group("/feedback"), admin, feedbackHandler)

		reactionHandler := handler.NewReactionHandler(services.Reactions())
		ReactionRouter(v1.Group("/reactions"), admin, reactionHandler)

		panelHandler := handler.NewPanelHandler(services.Panel())
		PanelRouter(v1.Group("/panel"), admin, panelHandler)

		linkHandler := handler.NewLinkHandler(services.Links())
		LinkRouter(v1.Group("/links"), linkHandler)

		issueHandler := handler.NewIssueHandler(services.Issues(), services.Gate())
		IssueRouter(v1.Group("/issues"), issueHandler)

		spamHandler := handler.NewSpamHandler(services.Spam())
		SpamRouter(v1.Group("/spam"), spamHandler)
	}
}
