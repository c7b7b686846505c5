package routes

import (
	_ "charting-dashboard-server/docs" // registers the OpenAPI document
	"charting-dashboard-server/internal/config"
	"charting-dashboard-server/internal/handlers"
	"charting-dashboard-server/internal/middleware"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, stats handlers.StatsService, cfg *config.Config) {
	dashboardHandler := handlers.NewDashboardHandler(stats, cfg.Stats.QueryTimeout)

	api := router.Group("/api")
	if cfg.RequireAuth {
		api.Use(middleware.AuthMiddleware(cfg.JWTSecret)) // Apply JWT authentication middleware
	}
	{
		api.GET("/dashboard/stats", dashboardHandler.GetStats)
		api.GET("/records", dashboardHandler.ListRecords)
	}

	// API documentation
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
