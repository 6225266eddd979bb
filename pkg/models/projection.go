package models

// Trend labels the direction of a player's recent performance
type Trend string

const (
	TrendInsufficientData Trend = "insufficient_data"
	TrendUp               Trend = "trending_up"
	TrendDown             Trend = "trending_down"
	TrendStable           Trend = "stable"
)

// Method identifies a season projection strategy
type Method string

const (
	MethodCareerAverage Method = "career_average"
	MethodRecentSeasons Method = "recent_seasons"
	MethodAgeAdjusted   Method = "age_adjusted"

	// MethodWeightedRecent is the next-game method identifier
	MethodWeightedRecent Method = "weighted_recent_games"
)

// StatLine is a projected per-game stat mapping. Values are rounded to one
// decimal place by the projector that produces them.
type StatLine struct {
	Minutes       float64 `json:"minutes"`
	Points        float64 `json:"points"`
	Rebounds      float64 `json:"rebounds"`
	Assists       float64 `json:"assists"`
	Steals        float64 `json:"steals"`
	Blocks        float64 `json:"blocks"`
	Turnovers     float64 `json:"turnovers"`
	ThreePointers float64 `json:"three_pointers"`
}

// TrailingAverage holds unweighted points/rebounds/assists means over a
// trailing slice of games
type TrailingAverage struct {
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
}

// RecentPerformance summarizes the window behind a next-game projection
type RecentPerformance struct {
	Last5Avg  TrailingAverage `json:"last_5_avg"`
	Last10Avg TrailingAverage `json:"last_10_avg"`
	Trend     Trend           `json:"trend"`
}

// NextGameProjection forecasts a player's next single game
type NextGameProjection struct {
	Method                 Method            `json:"method"`
	GamesAnalyzed          int               `json:"games_analyzed"`
	ProjectedStats         StatLine          `json:"projected_stats"`
	RecentPerformance      RecentPerformance `json:"recent_performance"`
	ProjectedFantasyPoints float64           `json:"projected_fantasy_points"`
}

// SeasonTotals extrapolates a per-game line to a full season. Totals are
// rounded to the nearest whole number.
type SeasonTotals struct {
	Games         int     `json:"games"`
	Minutes       float64 `json:"minutes"`
	Points        float64 `json:"points"`
	Rebounds      float64 `json:"rebounds"`
	Assists       float64 `json:"assists"`
	Steals        float64 `json:"steals"`
	Blocks        float64 `json:"blocks"`
	Turnovers     float64 `json:"turnovers"`
	ThreePointers float64 `json:"three_pointers"`
}

// SeasonProjection forecasts a player's next full season
type SeasonProjection struct {
	Method                      Method       `json:"method"`
	SeasonsAnalyzed             int          `json:"seasons_analyzed"`
	ProjectedPerGame            StatLine     `json:"projected_per_game"`
	ProjectedSeasonTotals       SeasonTotals `json:"projected_season_totals"`
	AdjustmentFactor            *float64     `json:"adjustment_factor,omitempty"` // age_adjusted only
	ProjectedFantasyPointsPG    float64      `json:"projected_fantasy_points_per_game"`
	ProjectedFantasyPointsTotal float64      `json:"projected_fantasy_points_season"`
}

// AllProjections bundles every projection method for one player
type AllProjections struct {
	NextGame          *NextGameProjection          `json:"next_game"`
	SeasonProjections map[Method]*SeasonProjection `json:"season_projections"`
}

// StatAccuracy compares one projected stat against the held-out actual
type StatAccuracy struct {
	Projected float64 `json:"projected"`
	Actual    float64 `json:"actual"`
	Error     float64 `json:"error"`
	Accuracy  float64 `json:"accuracy"` // 100 - pct error; negative when error exceeds 100%
}

// AccuracyReport back-tests the next-game projector against a validation
// slice of real games
type AccuracyReport struct {
	ValidationGames int                     `json:"validation_games"`
	Accuracy        map[string]StatAccuracy `json:"accuracy"`
	OverallAccuracy float64                 `json:"overall_accuracy"`
}
