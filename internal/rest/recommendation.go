package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"

	"github.com/labstack/echo/v4"
)

type RecommendationService interface {
	GetRecommendations(ctx context.Context, limit int) ([]domain.ScoredRecommendation, error)
}

type RecommendationHandler struct {
	service RecommendationService
	limit   int
	timeout time.Duration
}

func NewRecommendationHandler(service RecommendationService, limit int, timeout time.Duration) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		limit:   limit,
		timeout: timeout,
	}
}

// GET /api/recommendations
func (h *RecommendationHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.GetRecommendations(ctx, h.limit)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, RecommendationsResponse{Recommendations: recs})
}
