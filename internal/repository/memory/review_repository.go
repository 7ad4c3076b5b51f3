package memory

import (
	"context"
	"fmt"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
)

type ReviewRepository struct {
	Store *Store
}

func NewReviewRepository(store *Store) *ReviewRepository {
	return &ReviewRepository{
		Store: store,
	}
}

// FindAll returns reviews newest first.
func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()

	return append(make([]domain.Review, 0, len(r.Store.reviews)), r.Store.reviews...), nil
}

// Create assigns the next review id, then prepends the review and its feed
// activity and applies the optional shelf change, all under one lock.
// review.ID is set in place.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review, activity domain.FeedEntry, change *domain.ShelfChange) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	s := r.Store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastReviewID++
	review.ID = s.lastReviewID

	s.reviews = prepend(s.reviews, *review)
	s.feed = prepend(s.feed, activity)

	if change != nil {
		s.shelf.Finished = append(s.shelf.Finished, change.FinishedBook)
		s.shelf.History = prepend(s.shelf.History, change.History)
	}

	return nil
}

func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}
