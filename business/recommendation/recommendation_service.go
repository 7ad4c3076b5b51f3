package recommendation

import (
	"context"
	"fmt"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/metrics"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.CatalogEntry, error)
	PreferenceWeights(ctx context.Context) (map[string]float64, error)
}

type Service struct {
	repo CatalogRepository
	cfg  Config
}

func NewService(repo CatalogRepository, cfg Config) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
	}
}

// GetRecommendations ranks the catalog for the reader. limit <= 0 uses the configured limit.
func (s *Service) GetRecommendations(ctx context.Context, limit int) ([]domain.ScoredRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()

	catalog, err := s.repo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load catalog", err)
		return nil, err
	}

	weights, err := s.repo.PreferenceWeights(ctx)
	if err != nil {
		logger.Error("Failed to load preference weights", err)
		return nil, err
	}

	recs := s.cfg.Rank(catalog, weights, limit)

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.Inc()

	logger.Debug("recommendations_ranked",
		"request_id", logger.RequestIDFromContext(ctx),
		"catalog_size", len(catalog),
		"returned", len(recs),
	)

	return recs, nil
}
