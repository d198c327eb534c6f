package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/ghprofile/internal/handlers"
	"github.com/alimgiray/ghprofile/internal/middleware"
	"github.com/alimgiray/ghprofile/internal/repositories"
	"github.com/alimgiray/ghprofile/internal/services"
	"github.com/alimgiray/ghprofile/internal/workers"
	"github.com/alimgiray/ghprofile/pkg/config"
	"github.com/alimgiray/ghprofile/pkg/logger"
	"github.com/alimgiray/ghprofile/web"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	cfg := config.Get()

	logger.Configure(cfg.Log.Level, cfg.Log.Format)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize dependencies
	githubService, err := services.NewGitHubService(cfg.GitHub)
	if err != nil {
		logger.Fatalf("Failed to initialize GitHub client: %v", err)
	}
	viewerRepo := repositories.NewViewerRepository(func() *services.Viewer {
		return services.NewViewer(githubService)
	})
	exportService := services.NewExportService()

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(viewerRepo, cfg.SessionTTL(), cfg.SweepInterval())

	// Initialize router
	router := gin.New()

	// Add middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.SessionMiddleware())

	templates, err := web.Templates()
	if err != nil {
		logger.Fatalf("Failed to parse templates: %v", err)
	}
	router.SetHTMLTemplate(templates)

	// Setup routes
	handlers.RegisterRoutes(router,
		handlers.NewViewerHandler(viewerRepo, exportService),
		handlers.NewHealthHandler(),
		handlers.NewNotFoundHandler(),
	)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		logger.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Setup server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give outstanding searches time to settle
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}
