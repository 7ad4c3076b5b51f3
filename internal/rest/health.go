package rest

import (
	"net/http"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"

	"github.com/labstack/echo/v4"
)

type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// GET /api/health
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   domain.FormatTimestamp(h.now()),
	})
}
