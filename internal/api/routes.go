package api

import (
	"github.com/gin-gonic/gin"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/telemetry"
)

// RouteConfig carries the pieces routes need beyond the handler itself.
type RouteConfig struct {
	SubdomainRules []domain.SubdomainRule
	FeedbackRPS    int
	FeedbackBurst  int
}

// SetupRoutes installs the versioned API routes and the metrics endpoint.
func SetupRoutes(h *Handler, tp *telemetry.Provider, rc RouteConfig) func(*gin.Engine) {
	return func(router *gin.Engine) {
		router.GET("/metrics", gin.WrapH(tp.Handler()))

		v1 := router.Group("/api/v1")
		{
			v1.POST("/classify", h.Classify)
			v1.POST("/classify/batch", h.ClassifyBatch)
			v1.POST("/feedback", FeedbackRateLimit(rc.FeedbackRPS, rc.FeedbackBurst, tp), h.SubmitFeedback)
			v1.GET("/feedback/recent", h.ListFeedback)

			v1.GET("/domains", h.ListDomains(rc.SubdomainRules))
			v1.GET("/sections/:code/:id", h.GetSection)
			v1.GET("/articles/:article", h.GetArticle)
			v1.GET("/stats", h.GetStats)
		}
	}
}
