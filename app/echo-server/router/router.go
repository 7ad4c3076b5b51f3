package router

import (
	"net/http"

	"github.com/a-l-a-z-a-r/Socialbook/app/echo-server/metrics"
	"github.com/a-l-a-z-a-r/Socialbook/internal/middleware"
	"github.com/a-l-a-z-a-r/Socialbook/internal/rest"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/jsoncodec"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

type Options struct {
	CORSOrigins    []string
	WriteRateLimit float64
	WriteRateBurst int
}

type Handlers struct {
	Feed           *rest.FeedHandler
	Shelf          *rest.ShelfHandler
	Recommendation *rest.RecommendationHandler
	Review         *rest.ReviewHandler
	Health         *rest.HealthHandler
}

// New builds the echo instance with global middleware and all /api routes.
func New(opts Options, h Handlers) *echo.Echo {
	metrics.Init()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsoncodec.Serializer{}

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")
	SetupFeedRoutes(api, h.Feed)
	SetupShelfRoutes(api, h.Shelf)
	SetupRecommendationRoutes(api, h.Recommendation)
	SetupReviewRoutes(api, h.Review, middleware.WriteRateLimit(opts.WriteRateLimit, opts.WriteRateBurst))
	SetupHealthRoutes(api, h.Health)

	return e
}

func SetupFeedRoutes(api *echo.Group, handler *rest.FeedHandler) {
	api.GET("/feed", handler.GetFeed)
}

func SetupShelfRoutes(api *echo.Group, handler *rest.ShelfHandler) {
	api.GET("/shelf", handler.GetShelf)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	api.GET("/recommendations", handler.Get)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, writeLimit echo.MiddlewareFunc) {
	reviews := api.Group("/reviews")

	reviews.GET("", handler.GetReviews)
	reviews.POST("", handler.CreateReview, writeLimit)
}

func SetupHealthRoutes(api *echo.Group, handler *rest.HealthHandler) {
	api.GET("/health", handler.Health)
}
