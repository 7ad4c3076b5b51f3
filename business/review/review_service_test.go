//go:build !integration

package review

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
	"github.com/a-l-a-z-a-r/Socialbook/internal/repository/memory"
	"github.com/a-l-a-z-a-r/Socialbook/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fixture struct {
	svc   *reviewService
	feed  *memory.FeedRepository
	shelf *memory.ShelfRepository
}

func newFixture() fixture {
	store := memory.NewSeededStore()
	svc := NewReviewService(memory.NewReviewRepository(store))
	svc.now = func() time.Time { return time.Date(2024, 7, 11, 8, 30, 0, 0, time.UTC) }
	return fixture{
		svc:   svc,
		feed:  memory.NewFeedRepository(store),
		shelf: memory.NewShelfRepository(store),
	}
}

func submission(status string) domain.ReviewSubmission {
	rating := 4.8
	return domain.ReviewSubmission{
		User:   "Kai",
		Book:   "Piranesi",
		Rating: &rating,
		Review: "Haunting.",
		Genre:  "Fantasy",
		Status: status,
	}
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	got, err := f.svc.SubmitReview(ctx, submission(""))
	if err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	want := domain.Review{
		ID:        3,
		User:      "Kai",
		Book:      "Piranesi",
		Rating:    4.8,
		Review:    "Haunting.",
		Genre:     "Fantasy",
		CreatedAt: "2024-07-11T08:30:00.000Z",
	}
	if got != want {
		t.Errorf("SubmitReview() = %+v, want %+v", got, want)
	}

	reviews, _ := f.svc.GetReviews(ctx)
	if reviews[0] != want {
		t.Errorf("reviews[0] = %+v", reviews[0])
	}

	entries, _ := f.feed.FindAll(ctx)
	top := entries[0]
	if top.Action != "reviewed" || top.Status != "review" || top.User != "Kai" || top.Book != "Piranesi" {
		t.Errorf("feed[0] = %+v", top)
	}
	if top.Rating == nil || *top.Rating != 4.8 || top.Review != "Haunting." {
		t.Errorf("feed[0] rating/review = %v/%q", top.Rating, top.Review)
	}
	if top.CreatedAt != want.CreatedAt {
		t.Errorf("feed[0].CreatedAt = %q, want %q", top.CreatedAt, want.CreatedAt)
	}

	shelf, _ := f.shelf.Get(ctx)
	if len(shelf.Finished) != 4 || len(shelf.History) != 2 {
		t.Errorf("shelf changed for non-finished review: %+v", shelf)
	}
}

func TestSubmitReviewFinished(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	before := testutil.ToFloat64(metrics.BooksFinished)

	if _, err := f.svc.SubmitReview(ctx, submission("finished")); err != nil {
		t.Fatalf("SubmitReview() error = %v", err)
	}

	shelf, _ := f.shelf.Get(ctx)
	if shelf.Finished[len(shelf.Finished)-1] != "Piranesi" {
		t.Errorf("finished = %v", shelf.Finished)
	}
	if shelf.History[0] != (domain.HistoryEntry{Label: "Recent", Finished: 1}) {
		t.Errorf("history[0] = %+v", shelf.History[0])
	}
	if got := testutil.ToFloat64(metrics.BooksFinished); got != before+1 {
		t.Errorf("books finished counter = %v, want %v", got, before+1)
	}
}

func TestSubmitReviewOtherStatusLeavesShelf(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for _, status := range []string{"reading", "Finished", "review"} {
		if _, err := f.svc.SubmitReview(ctx, submission(status)); err != nil {
			t.Fatalf("SubmitReview(%q) error = %v", status, err)
		}
	}

	shelf, _ := f.shelf.Get(ctx)
	if len(shelf.Finished) != 4 || len(shelf.History) != 2 {
		t.Errorf("shelf changed: %+v", shelf)
	}
}

func TestSubmitReviewMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ReviewSubmission)
		field  string
	}{
		{"user", func(s *domain.ReviewSubmission) { s.User = "" }, "user"},
		{"book", func(s *domain.ReviewSubmission) { s.Book = "" }, "book"},
		{"rating", func(s *domain.ReviewSubmission) { s.Rating = nil }, "rating"},
		{"review", func(s *domain.ReviewSubmission) { s.Review = "" }, "review"},
		{"genre", func(s *domain.ReviewSubmission) { s.Genre = "" }, "genre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture()
			sub := submission("finished")
			tt.mutate(&sub)

			_, err := f.svc.SubmitReview(ctx, sub)
			if !errors.Is(err, domain.ErrMissingRequiredFields) {
				t.Fatalf("error = %v, want ErrMissingRequiredFields", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %q", err, tt.field)
			}

			reviews, _ := f.svc.GetReviews(ctx)
			entries, _ := f.feed.FindAll(ctx)
			shelf, _ := f.shelf.Get(ctx)
			if len(reviews) != 2 || len(entries) != 3 || len(shelf.Finished) != 4 || len(shelf.History) != 2 {
				t.Errorf("rejected submission mutated state: reviews=%d feed=%d finished=%d history=%d",
					len(reviews), len(entries), len(shelf.Finished), len(shelf.History))
			}
		})
	}
}

func TestSubmitReviewIDsIncrease(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	for want := 3; want <= 6; want++ {
		got, err := f.svc.SubmitReview(ctx, submission(""))
		if err != nil {
			t.Fatalf("SubmitReview() error = %v", err)
		}
		if got.ID != want {
			t.Errorf("ID = %d, want %d", got.ID, want)
		}
	}
}
