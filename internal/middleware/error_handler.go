package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders every unhandled error as {"error": message}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"request_id", logger.RequestIDFromContext(c.Request().Context()),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Error: message})
	}
	if err != nil {
		logger.Error("Failed to write error response", err)
	}
}
