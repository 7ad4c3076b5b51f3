package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/jsoncodec"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ReviewService interface {
	GetReviews(ctx context.Context) ([]domain.Review, error)
	SubmitReview(ctx context.Context, sub domain.ReviewSubmission) (domain.Review, error)
}

type ReviewHandler struct {
	reviewService ReviewService
	validator     *validator.Validate
	timeout       time.Duration
}

func NewReviewHandler(reviewService ReviewService, timeout time.Duration) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
		timeout:       timeout,
	}
}

type CreateReviewRequest struct {
	User   string               `json:"user" validate:"required"`
	Book   string               `json:"book" validate:"required"`
	Rating *jsoncodec.FlexFloat `json:"rating" validate:"required"`
	Review string               `json:"review" validate:"required"`
	Genre  string               `json:"genre" validate:"required"`
	Status string               `json:"status"`
}

// GET /api/reviews
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.reviewService.GetReviews(ctx)
	if err != nil {
		logger.Error("Failed to get reviews", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, ReviewsResponse{Reviews: reviews})
}

// POST /api/reviews
//
// The body is decoded as JSON whatever the Content-Type; an unreadable body
// counts as a submission with no fields.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest

	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil {
		metrics.ReviewsRejected.Inc()
		logger.Warn("Invalid review request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: msgMissingRequiredFields})
	}

	if err := h.validator.Struct(&req); err != nil {
		metrics.ReviewsRejected.Inc()
		logger.Warn("Review request missing required fields", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: msgMissingRequiredFields})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	review, err := h.reviewService.SubmitReview(ctx, domain.ReviewSubmission{
		User:   req.User,
		Book:   req.Book,
		Rating: req.Rating.Ptr(),
		Review: req.Review,
		Genre:  req.Genre,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingRequiredFields) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: msgMissingRequiredFields})
		}
		logger.Error("Failed to submit review", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, review)
}
