package domain

// CatalogEntry is a book eligible for recommendation.
type CatalogEntry struct {
	Title string  `json:"title"`
	Genre string  `json:"genre"`
	Avg   float64 `json:"avg"`
}

// ScoredRecommendation is a catalog entry ranked for the reader.
type ScoredRecommendation struct {
	Title  string  `json:"title"`
	Genre  string  `json:"genre"`
	Avg    float64 `json:"avg"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}
