package rest

import "github.com/a-l-a-z-a-r/Socialbook/domain"

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"error"`
}

const msgMissingRequiredFields = "Missing required fields"

type (
	FeedResponse struct {
		Feed []domain.FeedEntry `json:"feed"`
	}

	ShelfResponse struct {
		Shelf domain.Shelf `json:"shelf"`
	}

	RecommendationsResponse struct {
		Recommendations []domain.ScoredRecommendation `json:"recommendations"`
	}

	ReviewsResponse struct {
		Reviews []domain.Review `json:"reviews"`
	}

	HealthResponse struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
)
