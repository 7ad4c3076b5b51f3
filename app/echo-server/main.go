package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/a-l-a-z-a-r/Socialbook/app/echo-server/router"
	"github.com/a-l-a-z-a-r/Socialbook/business/feed"
	"github.com/a-l-a-z-a-r/Socialbook/business/recommendation"
	"github.com/a-l-a-z-a-r/Socialbook/business/review"
	"github.com/a-l-a-z-a-r/Socialbook/business/shelf"
	"github.com/a-l-a-z-a-r/Socialbook/internal/repository/memory"
	"github.com/a-l-a-z-a-r/Socialbook/internal/rest"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/config"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "environment", cfg.App.Environment)

	metrics.Init()

	// In-memory state, seeded with the demo library
	store := memory.NewSeededStore()

	// Init repo
	feedRepo := memory.NewFeedRepository(store)
	shelfRepo := memory.NewShelfRepository(store)
	reviewRepo := memory.NewReviewRepository(store)
	catalogRepo := memory.NewCatalogRepository(store)

	// Init service
	recoCfg := recommendation.DefaultConfig()
	recoCfg.Limit = cfg.Recommendation.Limit

	feedService := feed.NewFeedService(feedRepo)
	shelfService := shelf.NewShelfService(shelfRepo)
	reviewService := review.NewReviewService(reviewRepo)
	recommendationService := recommendation.NewService(catalogRepo, recoCfg)

	// Init handler
	timeout := cfg.Server.RequestTimeout
	handlers := router.Handlers{
		Feed:           rest.NewFeedHandler(feedService, timeout),
		Shelf:          rest.NewShelfHandler(shelfService, timeout),
		Recommendation: rest.NewRecommendationHandler(recommendationService, recoCfg.Limit, timeout),
		Review:         rest.NewReviewHandler(reviewService, timeout),
		Health:         rest.NewHealthHandler(),
	}

	e := router.New(router.Options{
		CORSOrigins:    cfg.Server.CORSOrigins,
		WriteRateLimit: cfg.Server.WriteRateLimit,
		WriteRateBurst: cfg.Server.WriteRateBurst,
	}, handlers)

	// Goroutine server
	go func() {
		addr := cfg.Address()
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
