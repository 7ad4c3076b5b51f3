package memory

import (
	"context"
	"fmt"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
)

type FeedRepository struct {
	Store *Store
}

func NewFeedRepository(store *Store) *FeedRepository {
	return &FeedRepository{
		Store: store,
	}
}

// FindAll returns the feed newest first.
func (r *FeedRepository) FindAll(ctx context.Context) ([]domain.FeedEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()

	return append(make([]domain.FeedEntry, 0, len(r.Store.feed)), r.Store.feed...), nil
}
