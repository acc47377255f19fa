package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/questionforge/ingestor/internal/config"
)

// NewServer builds the HTTP server with bounded timeouts. Callers own
// startup and graceful shutdown.
func NewServer(handler *Handler, cfg *config.Config) *http.Server {
	if !cfg.Service.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	SetupRoutes(router, handler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Service.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}
