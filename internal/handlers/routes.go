package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes wires every page and API route of the viewer
func RegisterRoutes(router *gin.Engine, viewerHandler *ViewerHandler, healthHandler *HealthHandler, notFoundHandler *NotFoundHandler) {
	// Viewer page
	router.GET("/", viewerHandler.Index)
	router.POST("/search", viewerHandler.Search)
	router.GET("/export.xlsx", viewerHandler.Export)

	// JSON API over the same viewer
	api := router.Group("/api")
	{
		api.GET("/state", viewerHandler.State)
		api.PUT("/input", viewerHandler.UpdateInput)
		api.POST("/search", viewerHandler.APISearch)
		api.DELETE("/viewer", viewerHandler.Reset)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}
