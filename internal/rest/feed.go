package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"

	"github.com/labstack/echo/v4"
)

type FeedService interface {
	GetFeed(ctx context.Context) ([]domain.FeedEntry, error)
}

type FeedHandler struct {
	feedService FeedService
	timeout     time.Duration
}

func NewFeedHandler(feedService FeedService, timeout time.Duration) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
		timeout:     timeout,
	}
}

// GET /api/feed
func (h *FeedHandler) GetFeed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	entries, err := h.feedService.GetFeed(ctx)
	if err != nil {
		logger.Error("Failed to get feed", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, FeedResponse{Feed: entries})
}
