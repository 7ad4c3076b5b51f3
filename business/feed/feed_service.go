package feed

import (
	"context"
	"fmt"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/logger"
)

// FeedRepository contract interface
type FeedRepository interface {
	FindAll(ctx context.Context) ([]domain.FeedEntry, error)
}

type feedService struct {
	feedRepo FeedRepository
}

func NewFeedService(feedRepo FeedRepository) *feedService {
	return &feedService{
		feedRepo: feedRepo,
	}
}

func (s *feedService) GetFeed(ctx context.Context) ([]domain.FeedEntry, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get feed")
		return nil, fmt.Errorf("context error: %w", err)
	}

	entries, err := s.feedRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find feed", err)
		return nil, err
	}

	return entries, nil
}
