package scoring

// Weights maps each scoring category to its point value, plus the two
// conditional bonus values. A Weights value is read-only once built; share
// one across goroutines freely.
type Weights struct {
	Points            float64 `json:"points"`
	Rebounds          float64 `json:"rebounds"`
	Assists           float64 `json:"assists"`
	Steals            float64 `json:"steals"`
	Blocks            float64 `json:"blocks"`
	Turnovers         float64 `json:"turnovers"`
	ThreePointers     float64 `json:"three_pointers"`
	OffensiveRebounds float64 `json:"offensive_rebounds"`
	FieldGoalsMade    float64 `json:"field_goals_made"`
	FieldGoalsMissed  float64 `json:"field_goals_missed"`
	FreeThrowsMade    float64 `json:"free_throws_made"`
	FreeThrowsMissed  float64 `json:"free_throws_missed"`
	DoubleDouble      float64 `json:"double_double"`
	TripleDouble      float64 `json:"triple_double"`
}

// DefaultWeights returns the standard scoring configuration. Callers build
// it once and pass it everywhere; there is no ambient global to mutate.
func DefaultWeights() Weights {
	return Weights{
		Points:            1.0,
		Rebounds:          1.0,
		Assists:           1.5,
		Steals:            2.0,
		Blocks:            2.0,
		Turnovers:         -2.0,
		ThreePointers:     1.0,
		OffensiveRebounds: 0.5,
	}
}

// WeightsFromPartial builds a Weights value from a sparse category→value
// map, filling every absent category from the defaults. Unknown category
// names are ignored, not rejected. The merge is field-by-field, never
// whole-record replacement.
func WeightsFromPartial(partial map[string]float64) Weights {
	w := DefaultWeights()

	for key, value := range partial {
		switch key {
		case "points":
			w.Points = value
		case "rebounds":
			w.Rebounds = value
		case "assists":
			w.Assists = value
		case "steals":
			w.Steals = value
		case "blocks":
			w.Blocks = value
		case "turnovers":
			w.Turnovers = value
		case "three_pointers":
			w.ThreePointers = value
		case "offensive_rebounds":
			w.OffensiveRebounds = value
		case "field_goals_made":
			w.FieldGoalsMade = value
		case "field_goals_missed":
			w.FieldGoalsMissed = value
		case "free_throws_made":
			w.FreeThrowsMade = value
		case "free_throws_missed":
			w.FreeThrowsMissed = value
		case "double_double":
			w.DoubleDouble = value
		case "triple_double":
			w.TripleDouble = value
		}
	}

	return w
}
