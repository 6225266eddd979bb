package projector

import "errors"

// Sentinel errors surfaced by projection operations. Callers map these to
// transport-level responses; the projector itself never logs.
var (
	// ErrInsufficientData means fewer games or seasons were supplied than
	// the method requires. No partial projection is ever returned.
	ErrInsufficientData = errors.New("insufficient data for projection")

	// ErrUnknownMethod means the caller asked for a season projection
	// method that does not exist.
	ErrUnknownMethod = errors.New("unknown projection method")
)

// Config holds the tuning constants behind the projection methods. The
// defaults reproduce the standard model.
type Config struct {
	// WeightSpread is the exponent range for recency weights in next-game
	// projection and accuracy validation
	WeightSpread float64

	// RecentSeasonCount is how many trailing seasons the recent_seasons and
	// age_adjusted methods look at
	RecentSeasonCount int

	// AgeAdjustFloor / AgeAdjustCeil clamp the age-adjusted decline factor.
	// The ceiling of 1.0 means the method never projects an increase.
	AgeAdjustFloor float64
	AgeAdjustCeil  float64

	// SeasonLength is the games count used for season-total extrapolation
	SeasonLength int

	// TrendMinGames is the minimum window for trend classification
	TrendMinGames int

	// TrendThresholdPct is the percentage change beyond which a player is
	// labeled trending up or down
	TrendThresholdPct float64
}

// DefaultConfig returns the standard projection tuning
func DefaultConfig() Config {
	return Config{
		WeightSpread:      2.0,
		RecentSeasonCount: 3,
		AgeAdjustFloor:    0.85,
		AgeAdjustCeil:     1.0,
		SeasonLength:      82,
		TrendMinGames:     5,
		TrendThresholdPct: 10.0,
	}
}

// Projector derives next-game and season forecasts from historical stat
// lines. It holds no mutable state; one Projector is safe for concurrent
// use across players.
type Projector struct {
	config Config
}

// New creates a projector with the given tuning
func New(config Config) *Projector {
	return &Projector{config: config}
}

// NewDefault creates a projector with the standard tuning
func NewDefault() *Projector {
	return New(DefaultConfig())
}
