package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub_backend/internal/handlers"
	"workhub_backend/internal/middleware"
)

// Setup mounts the middleware chain and the /api surface on the engine.
func Setup(engine *gin.Engine, h *handlers.AppHandlers) {
	engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.RecoveryMiddleware(),
	)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	h.RegisterAll(api)
}
