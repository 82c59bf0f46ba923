package routes

import (
	"classifieds_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, uploadsDir string) {
	api := ginRouter.Group("/api")
	{
		appHandlers.ReferenceHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.AdHandler.RegisterRoutes(api)
		appHandlers.MessageHandler.RegisterRoutes(api)
	}

	// Ad images saved by the local storage backend
	if uploadsDir != "" {
		ginRouter.Static("/uploads", uploadsDir)
	}
}
