package recommendation

import (
	"sort"
	"strconv"

	"github.com/a-l-a-z-a-r/Socialbook/domain"
)

// score = pw*preference + aw*avg, rounded to two decimals
func (c Config) Score(entry domain.CatalogEntry, weights map[string]float64) domain.ScoredRecommendation {
	pref, ok := weights[entry.Genre]
	if !ok {
		pref = c.DefaultPreference
	}

	return domain.ScoredRecommendation{
		Title:  entry.Title,
		Genre:  entry.Genre,
		Avg:    entry.Avg,
		Score:  round(c.PreferenceWeight*pref+c.AverageWeight*entry.Avg, scoreDecimals),
		Reason: c.Reasons.For(entry.Genre),
	}
}

// Rank scores every catalog entry and returns the best limit of them, highest
// score first. Equal scores keep catalog order. limit <= 0 uses c.Limit.
func (c Config) Rank(catalog []domain.CatalogEntry, weights map[string]float64, limit int) []domain.ScoredRecommendation {
	if limit <= 0 {
		limit = c.Limit
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	scored := make([]domain.ScoredRecommendation, 0, len(catalog))
	for _, entry := range catalog {
		scored = append(scored, c.Score(entry, weights))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}
	return scored
}

// round rounds the exact binary value of v to decimals places.
func round(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}
