package memory

import (
	"sync"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
)

// Store holds all library state for the process. Feed, reviews and shelf are
// guarded by a single lock so a review submission updates them together.
type Store struct {
	mu sync.RWMutex

	feed         []domain.FeedEntry
	reviews      []domain.Review
	shelf        domain.Shelf
	lastReviewID int

	catalog []domain.CatalogEntry
	weights map[string]float64
}

func NewStore(seed Seed) *Store {
	s := &Store{
		feed:    append(make([]domain.FeedEntry, 0, len(seed.Feed)), seed.Feed...),
		reviews: append(make([]domain.Review, 0, len(seed.Reviews)), seed.Reviews...),
		shelf:   seed.Shelf.Clone(),
		catalog: append(make([]domain.CatalogEntry, 0, len(seed.Catalog)), seed.Catalog...),
		weights: make(map[string]float64, len(seed.PreferenceWeights)),
	}

	for genre, w := range seed.PreferenceWeights {
		s.weights[genre] = w
	}

	for _, r := range s.reviews {
		if r.ID > s.lastReviewID {
			s.lastReviewID = r.ID
		}
	}

	return s
}

// NewSeededStore returns a store populated with the demo data.
func NewSeededStore() *Store {
	return NewStore(DefaultSeed())
}
