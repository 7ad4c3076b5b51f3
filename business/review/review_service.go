package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/metrics"
)

// ReviewRepository contract interface
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review, activity domain.FeedEntry, change *domain.ShelfChange) error
}

type reviewService struct {
	reviewRepo ReviewRepository
	now        func() time.Time
}

func NewReviewService(reviewRepo ReviewRepository) *reviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		now:        time.Now,
	}
}

func (s *reviewService) GetReviews(ctx context.Context) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get reviews")
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find reviews", err)
		return nil, err
	}

	return reviews, nil
}

// SubmitReview records a review, posts it to the feed and, when the reader
// marked the book finished, moves it onto the finished shelf.
func (s *reviewService) SubmitReview(ctx context.Context, sub domain.ReviewSubmission) (domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when submit review")
		return domain.Review{}, fmt.Errorf("context error: %w", err)
	}

	if missing := sub.MissingFields(); len(missing) > 0 {
		metrics.ReviewsRejected.Inc()
		logger.Info("Review rejected", "missing", strings.Join(missing, ","))
		return domain.Review{}, fmt.Errorf("%w: %s", domain.ErrMissingRequiredFields, strings.Join(missing, ", "))
	}

	createdAt := domain.FormatTimestamp(s.now())
	rating := *sub.Rating

	review := domain.Review{
		User:      sub.User,
		Book:      sub.Book,
		Rating:    rating,
		Review:    sub.Review,
		Genre:     sub.Genre,
		CreatedAt: createdAt,
	}

	activity := domain.FeedEntry{
		User:      sub.User,
		Action:    domain.FeedActionReviewed,
		Book:      sub.Book,
		Rating:    &rating,
		Review:    sub.Review,
		Status:    domain.FeedStatusReview,
		CreatedAt: createdAt,
	}

	var change *domain.ShelfChange
	if sub.Status == domain.ReviewStatusFinished {
		change = &domain.ShelfChange{
			FinishedBook: sub.Book,
			History:      domain.HistoryEntry{Label: domain.RecentHistoryLabel, Finished: 1},
		}
	}

	if err := s.reviewRepo.Create(ctx, &review, activity, change); err != nil {
		logger.Error("failed to create review", err)
		return domain.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	metrics.ReviewsSubmitted.Inc()
	if change != nil {
		metrics.BooksFinished.Inc()
	}

	logger.Info("review created successfully",
		"request_id", logger.RequestIDFromContext(ctx),
		"review_id", review.ID,
		"finished", change != nil,
	)

	return review, nil
}
