package domain

import (
	"errors"
	"math"
	"time"
)

// TimestampLayout renders UTC instants as ISO-8601 with a trailing Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const ReviewStatusFinished = "finished"

var ErrMissingRequiredFields = errors.New("missing required fields")

type Review struct {
	ID        int     `json:"id"`
	User      string  `json:"user"`
	Book      string  `json:"book"`
	Rating    float64 `json:"rating"`
	Review    string  `json:"review"`
	Genre     string  `json:"genre"`
	CreatedAt string  `json:"created_at"`
}

// ReviewSubmission is a review as submitted by a reader, before an id is assigned.
// Rating is nil when the field was absent.
type ReviewSubmission struct {
	User   string
	Book   string
	Rating *float64
	Review string
	Genre  string
	Status string
}

// MissingFields lists the required fields that are absent or empty.
// A NaN or infinite rating counts as absent.
func (s ReviewSubmission) MissingFields() []string {
	var missing []string
	if s.User == "" {
		missing = append(missing, "user")
	}
	if s.Book == "" {
		missing = append(missing, "book")
	}
	if s.Rating == nil || math.IsNaN(*s.Rating) || math.IsInf(*s.Rating, 0) {
		missing = append(missing, "rating")
	}
	if s.Review == "" {
		missing = append(missing, "review")
	}
	if s.Genre == "" {
		missing = append(missing, "genre")
	}
	return missing
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
