//go:build !integration

package memory

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
)

func newReview(user string) *domain.Review {
	return &domain.Review{
		User:      user,
		Book:      "Piranesi",
		Rating:    4.8,
		Review:    "Haunting.",
		Genre:     "Fantasy",
		CreatedAt: "2024-07-11T08:00:00.000Z",
	}
}

func TestReviewRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	store := NewSeededStore()
	reviews := NewReviewRepository(store)
	feed := NewFeedRepository(store)
	shelf := NewShelfRepository(store)

	before, _ := shelf.Get(ctx)

	review := newReview("Kai")
	activity := domain.FeedEntry{User: "Kai", Action: domain.FeedActionReviewed, Book: "Piranesi", Status: domain.FeedStatusReview}
	if err := reviews.Create(ctx, review, activity, nil); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if review.ID != 3 {
		t.Errorf("ID = %d, want 3", review.ID)
	}

	all, _ := reviews.FindAll(ctx)
	if len(all) != 3 || all[0].ID != 3 || all[0].User != "Kai" {
		t.Errorf("new review not at index 0: %+v", all[0])
	}

	entries, _ := feed.FindAll(ctx)
	if len(entries) != 4 || entries[0].User != "Kai" {
		t.Errorf("activity not at index 0: %+v", entries[0])
	}

	after, _ := shelf.Get(ctx)
	if len(after.Finished) != len(before.Finished) || len(after.History) != len(before.History) {
		t.Errorf("shelf changed without a shelf change: %+v", after)
	}
}

func TestReviewRepositoryCreateAppliesShelfChange(t *testing.T) {
	ctx := context.Background()
	store := NewSeededStore()
	reviews := NewReviewRepository(store)
	shelf := NewShelfRepository(store)

	change := &domain.ShelfChange{
		FinishedBook: "Piranesi",
		History:      domain.HistoryEntry{Label: domain.RecentHistoryLabel, Finished: 1},
	}
	if err := reviews.Create(ctx, newReview("Kai"), domain.FeedEntry{User: "Kai"}, change); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, _ := shelf.Get(ctx)
	if last := got.Finished[len(got.Finished)-1]; last != "Piranesi" {
		t.Errorf("last finished = %q, want Piranesi", last)
	}
	if got.History[0] != (domain.HistoryEntry{Label: "Recent", Finished: 1}) {
		t.Errorf("history[0] = %+v", got.History[0])
	}
	if len(got.History) != 3 {
		t.Errorf("history length = %d, want 3", len(got.History))
	}
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	store := NewSeededStore()

	entries, _ := NewFeedRepository(store).FindAll(ctx)
	entries[0].User = "mutated"

	again, _ := NewFeedRepository(store).FindAll(ctx)
	if again[0].User != "Luca" {
		t.Errorf("feed mutated through returned slice: %q", again[0].User)
	}

	weights, _ := NewCatalogRepository(store).PreferenceWeights(ctx)
	weights["Fantasy"] = 5
	weights2, _ := NewCatalogRepository(store).PreferenceWeights(ctx)
	if weights2["Fantasy"] != 3.2 {
		t.Errorf("weights mutated through returned map: %v", weights2["Fantasy"])
	}
}

func TestConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	store := NewSeededStore()
	reviews := NewReviewRepository(store)

	const n = 50
	ids := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := newReview("reader")
			if err := reviews.Create(ctx, r, domain.FeedEntry{User: "reader"}, nil); err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			ids[i] = r.ID
		}(i)
	}
	wg.Wait()

	sort.Ints(ids)
	for i, id := range ids {
		if id != i+3 {
			t.Fatalf("ids not consecutive from 3: %v", ids)
		}
	}

	all, _ := reviews.FindAll(ctx)
	if len(all) != n+2 {
		t.Errorf("review count = %d, want %d", len(all), n+2)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewSeededStore()
	if _, err := NewFeedRepository(store).FindAll(ctx); err == nil {
		t.Error("expected context error from FindAll")
	}
	if err := NewReviewRepository(store).Create(ctx, newReview("x"), domain.FeedEntry{}, nil); err == nil {
		t.Error("expected context error from Create")
	}

	all, _ := NewReviewRepository(store).FindAll(context.Background())
	if len(all) != 2 {
		t.Errorf("canceled create mutated reviews: %d", len(all))
	}
}
