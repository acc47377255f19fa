package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/crawl", handler.Crawl)

		questions := v1.Group("/crawled-questions")
		{
			questions.GET("", handler.List)
			questions.POST("/:id/approve", handler.Approve)
			questions.POST("/:id/reject", handler.Reject)
		}
	}
}
