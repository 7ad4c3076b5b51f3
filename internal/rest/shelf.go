package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"

	"github.com/labstack/echo/v4"
)

type ShelfService interface {
	GetShelf(ctx context.Context) (domain.Shelf, error)
}

type ShelfHandler struct {
	shelfService ShelfService
	timeout      time.Duration
}

func NewShelfHandler(shelfService ShelfService, timeout time.Duration) *ShelfHandler {
	return &ShelfHandler{
		shelfService: shelfService,
		timeout:      timeout,
	}
}

// GET /api/shelf
func (h *ShelfHandler) GetShelf(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	shelf, err := h.shelfService.GetShelf(ctx)
	if err != nil {
		logger.Error("Failed to get shelf", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, ShelfResponse{Shelf: shelf})
}
