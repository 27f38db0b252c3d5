package search

// Relevance tuning for the asset pipelines. Each pipeline enforces its own
// minimum score: tag matches are inherently looser than direct name/
// description matches, and author matches looser still. Boosts weight the
// text stage so direct and author matches rank above incidental ones.
const (
	// DefaultDirectScoreFloor rejects weak direct file matches.
	DefaultDirectScoreFloor = 2.0
	// DefaultTagScoreFloor rejects weak tag-value matches.
	DefaultTagScoreFloor = 1.5
	// DefaultAuthorScoreFloor rejects weak author matches.
	DefaultAuthorScoreFloor = 0.5

	// directTextBoost weights the file name/description text clause.
	directTextBoost = 2.0
	// authorTextBoost weights the author name/email text clause.
	authorTextBoost = 1.5
)

// Thresholds are the per-pipeline minimum relevance scores.
type Thresholds struct {
	Direct float64
	Tag    float64
	Author float64
}

// DefaultThresholds returns the standard pipeline score floors.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Direct: DefaultDirectScoreFloor,
		Tag:    DefaultTagScoreFloor,
		Author: DefaultAuthorScoreFloor,
	}
}
