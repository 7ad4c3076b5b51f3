package memory

import (
	"context"
	"fmt"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
)

type ShelfRepository struct {
	Store *Store
}

func NewShelfRepository(store *Store) *ShelfRepository {
	return &ShelfRepository{
		Store: store,
	}
}

func (r *ShelfRepository) Get(ctx context.Context) (domain.Shelf, error) {
	if err := ctx.Err(); err != nil {
		return domain.Shelf{}, fmt.Errorf("context error: %w", err)
	}

	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()

	return r.Store.shelf.Clone(), nil
}
