package memory

import (
	"context"
	"fmt"
	"maps"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
)

type CatalogRepository struct {
	Store *Store
}

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{
		Store: store,
	}
}

// FindAll returns the catalog in its fixed order.
func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.CatalogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()

	return append(make([]domain.CatalogEntry, 0, len(r.Store.catalog)), r.Store.catalog...), nil
}

// PreferenceWeights returns the reader's per-genre affinity table.
func (r *CatalogRepository) PreferenceWeights(ctx context.Context) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.Store.mu.RLock()
	defer r.Store.mu.RUnlock()

	return maps.Clone(r.Store.weights), nil
}
