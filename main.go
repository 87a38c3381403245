package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dalfonso89/shop-mock-api/internal/api"
	"github.com/dalfonso89/shop-mock-api/internal/config"
	"github.com/dalfonso89/shop-mock-api/internal/logger"
	"github.com/dalfonso89/shop-mock-api/internal/platform"
	"github.com/dalfonso89/shop-mock-api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Initialize services
	keepAliveService := service.NewKeepAliveService(service.NewLatencySimulator(cfg.KeepAliveDelay))
	purchaseService := service.NewPurchaseService(
		service.NewLatencySimulator(cfg.PurchaseDelay),
		service.NewIDGenerator(),
		logger,
	)
	ratesService := service.NewRatesService(service.NewStaticRatesProvider(), logger)

	// Initialize HTTP handlers
	handlerConfig := api.HandlerConfig{
		Logger:           logger,
		KeepAliveService: keepAliveService,
		PurchaseService:  purchaseService,
		RatesService:     ratesService,
		PublicDir:        cfg.PublicDir,
	}
	handlers := api.NewHandlers(handlerConfig)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := handlers.SetupRoutes()

	// Setup HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Shopping app server running on http://localhost:" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	shutdownCtx, stop := platform.NewShutdownContext(context.Background())
	defer stop()
	<-shutdownCtx.Done()

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
