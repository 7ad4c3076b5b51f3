package recommendation

// DefaultPreference is the affinity assumed for genres missing from the preference table.
const DefaultPreference = 3.5

const (
	defaultPreferenceWeight = 0.65
	defaultAverageWeight    = 0.35
	defaultLimit            = 5
	scoreDecimals           = 2
)

type Config struct {
	// weight of the reader's genre preference in the score
	PreferenceWeight float64
	// weight of the community average rating in the score
	AverageWeight float64

	DefaultPreference float64
	Limit             int

	Reasons ReasonTable
}

func DefaultConfig() Config {
	return Config{
		PreferenceWeight:  defaultPreferenceWeight,
		AverageWeight:     defaultAverageWeight,
		DefaultPreference: DefaultPreference,
		Limit:             defaultLimit,
		Reasons:           DefaultReasons(),
	}
}
