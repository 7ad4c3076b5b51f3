package domain

const (
	FeedActionRated    = "rated"
	FeedActionStarted  = "started"
	FeedActionReviewed = "reviewed"

	FeedStatusReading  = "reading"
	FeedStatusFinished = "finished"
	FeedStatusReview   = "review"
)

type FeedEntry struct {
	User      string   `json:"user"`
	Action    string   `json:"action"`
	Book      string   `json:"book"`
	Rating    *float64 `json:"rating,omitempty"`
	Review    string   `json:"review,omitempty"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
}
