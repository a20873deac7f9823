// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/searchgate/backend/internal/api/handlers"
	"github.com/searchgate/backend/internal/config"
	"github.com/searchgate/backend/internal/middleware"
	"github.com/searchgate/backend/internal/services"
	"github.com/searchgate/backend/internal/tavily"
	"github.com/searchgate/backend/pkg/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	// Initialize logger
	logger := utils.GetLogger()

	logger.Info("Starting web search gateway...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Fail fast when the provider credential is missing
	if err := cfg.ValidateTavily(); err != nil {
		logger.WithError(err).Fatal("Tavily configuration validation failed")
	}

	// Initialize Tavily client and search service
	tavilyClient := tavily.NewClient(cfg.Tavily.BaseURL, cfg.Tavily.APIKey, logger)
	searchService := services.NewSearchService(tavilyClient, logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger)

	// Set up router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/health", searchHandler.HandleHealth)
	router.POST("/search", searchHandler.HandleSearch)
	router.GET("/quick-search", searchHandler.HandleQuickSearch)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}

	logger.Info("Server stopped")
}
