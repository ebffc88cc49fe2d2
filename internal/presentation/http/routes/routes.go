// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lakbayph/lakbay-go/internal/application/container"
	"github.com/lakbayph/lakbay-go/internal/presentation/http/handlers"
	"github.com/lakbayph/lakbay-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger, container.PerfTracker)
	stateHandlers := handlers.NewStateHandlers(container.MapStateService, container.Logger, container.PerfTracker)
	shareHandlers := handlers.NewShareHandlers(container.SnapshotService, container.ShareImageService, container.CaptionService, container.Logger, container.PerfTracker)
	profileHandlers := handlers.NewProfileHandlers(container.ProfileService, container.Logger)
	systemHandlers := handlers.NewSystemHandlers(container.Registry, container.PerfTracker)

	api := r.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(container.AuthService))
	{
		// Authentication
		auth := api.Group("/auth")
		{
			auth.POST("/session", authHandlers.PostSession)
			auth.GET("/status", authHandlers.GetAuthStatus)
			auth.POST("/login", authHandlers.PostLogin)
		}

		// Map state; anonymous callers fall back to the local store
		api.GET("/state", stateHandlers.GetState)
		api.PUT("/state", stateHandlers.PutState)
		api.POST("/state/cycle", stateHandlers.PostCycle)
		api.POST("/state/migrate", middleware.RequireSession(), stateHandlers.PostMigrate)

		// Derived views
		api.GET("/stats", stateHandlers.GetStats)
		api.GET("/levels", stateHandlers.GetLevels)

		// Sharing
		api.POST("/share", shareHandlers.PostShare)
		api.GET("/share/:slug", shareHandlers.GetShared)
		api.POST("/share/:slug/image", shareHandlers.PostShareImage)
		api.POST("/share/:slug/caption", shareHandlers.PostCaption)

		// Public usernames
		api.POST("/profile/username", middleware.RequireSession(), profileHandlers.PostUsername)
		api.GET("/profile/username/:username", profileHandlers.GetUsername)

		// System
		api.GET("/health", systemHandlers.GetHealth)
		api.GET("/registry", systemHandlers.GetRegistry)

		// Admin
		admin := api.Group("/admin")
		admin.Use(middleware.AdminOnly())
		{
			admin.GET("/metrics", systemHandlers.GetMetrics)
		}
	}

	return r
}
