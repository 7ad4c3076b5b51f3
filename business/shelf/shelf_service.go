package shelf

import (
	"context"
	"fmt"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"
)

// ShelfRepository contract interface
type ShelfRepository interface {
	Get(ctx context.Context) (domain.Shelf, error)
}

type shelfService struct {
	shelfRepo ShelfRepository
}

func NewShelfService(shelfRepo ShelfRepository) *shelfService {
	return &shelfService{
		shelfRepo: shelfRepo,
	}
}

func (s *shelfService) GetShelf(ctx context.Context) (domain.Shelf, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get shelf")
		return domain.Shelf{}, fmt.Errorf("context error: %w", err)
	}

	shelf, err := s.shelfRepo.Get(ctx)
	if err != nil {
		logger.Error("Failed to get shelf", err)
		return domain.Shelf{}, err
	}

	return shelf, nil
}
