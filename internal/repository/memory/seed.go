package memory

import "github.com/a-l-a-z-a-r/Socialbook/domain"

type Seed struct {
	Feed              []domain.FeedEntry
	Shelf             domain.Shelf
	Reviews           []domain.Review
	Catalog           []domain.CatalogEntry
	PreferenceWeights map[string]float64
}

func rating(v float64) *float64 {
	return &v
}

// DefaultSeed is the demo data the API starts with.
func DefaultSeed() Seed {
	return Seed{
		Feed: []domain.FeedEntry{
			{
				User:      "Luca",
				Action:    domain.FeedActionRated,
				Book:      "Divine Rivals",
				Rating:    rating(4.9),
				Review:    "My favorite enemies-to-lovers of the year.",
				Status:    domain.FeedStatusFinished,
				CreatedAt: "2024-07-10T10:00:00Z",
			},
			{
				User:      "Nia",
				Action:    domain.FeedActionStarted,
				Book:      "Before the Coffee Gets Cold",
				Status:    domain.FeedStatusReading,
				CreatedAt: "2024-07-10T09:42:00Z",
			},
			{
				User:      "Arjun",
				Action:    domain.FeedActionReviewed,
				Book:      "Everything I Never Told You",
				Review:    "Quietly devastating and hopeful.",
				Status:    domain.FeedStatusReview,
				CreatedAt: "2024-07-10T09:21:00Z",
			},
		},
		Shelf: domain.Shelf{
			WantToRead: []string{
				"The Heaven & Earth Grocery Store",
				"Tomorrow, and Tomorrow, and Tomorrow",
				"Happy Place",
			},
			CurrentlyReading: []string{"Afterworld", "The Poppy War", "Gideon the Ninth"},
			Finished: []string{
				"Fourth Wing",
				"Legends & Lattes",
				"Station Eleven",
				"The Anthropocene Reviewed",
			},
			History: []domain.HistoryEntry{
				{Label: "This Month", Finished: 6},
				{Label: "This Year", Finished: 18},
			},
		},
		Reviews: []domain.Review{
			{
				ID:        1,
				User:      "Amina",
				Book:      "Afterworld",
				Rating:    4.7,
				Review:    "Sharp, cinematic, and full of wonder.",
				Genre:     "Sci-Fi",
				CreatedAt: "2024-07-09T14:00:00Z",
			},
			{
				ID:        2,
				User:      "Diego",
				Book:      "Divine Rivals",
				Rating:    4.9,
				Review:    "Romance and war correspondence with heart.",
				Genre:     "Fantasy",
				CreatedAt: "2024-07-08T10:00:00Z",
			},
		},
		Catalog: []domain.CatalogEntry{
			{Title: "Tomorrow, and Tomorrow, and Tomorrow", Genre: "Novel", Avg: 4.8},
			{Title: "Station Eleven", Genre: "Sci-Fi", Avg: 4.7},
			{Title: "The Thursday Murder Club", Genre: "Mystery", Avg: 4.4},
			{Title: "Lessons in Chemistry", Genre: "Novel", Avg: 4.5},
			{Title: "Fourth Wing", Genre: "Fantasy", Avg: 4.2},
			{Title: "The Anthropocene Reviewed", Genre: "Non-Fiction", Avg: 4.6},
		},
		PreferenceWeights: map[string]float64{
			"Novel":       4.8,
			"Sci-Fi":      4.6,
			"Mystery":     4.4,
			"Fantasy":     3.2,
			"Non-Fiction": 3.6,
		},
	}
}
