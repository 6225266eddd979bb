package projector_test

import (
	"errors"
	"math"
	"testing"

	"github.com/courtside/hoopcast/services/projection-service/internal/projector"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

// season builds a SeasonLine from per-game rates over the given games count
func season(name string, games, ppg, rpg, apg float64) models.SeasonLine {
	return models.SeasonLine{
		Season:   name,
		Games:    games,
		Minutes:  games * 34,
		Points:   games * ppg,
		Rebounds: games * rpg,
		Assists:  games * apg,
		ThreePM:  games * 2,
	}
}

func TestSeasonEmptySeries(t *testing.T) {
	p := projector.NewDefault()

	for _, method := range []models.Method{
		models.MethodCareerAverage, models.MethodRecentSeasons, models.MethodAgeAdjusted,
	} {
		_, err := p.Season(nil, method)
		if !errors.Is(err, projector.ErrInsufficientData) {
			t.Errorf("Season(nil, %s) error = %v, want ErrInsufficientData", method, err)
		}
	}
}

func TestSeasonUnknownMethod(t *testing.T) {
	p := projector.NewDefault()

	series := models.CareerSeries{season("2024-25", 70, 20, 6, 4)}
	_, err := p.Season(series, models.Method("quantum_leap"))
	if !errors.Is(err, projector.ErrUnknownMethod) {
		t.Errorf("error = %v, want ErrUnknownMethod", err)
	}
}

func TestSeasonCareerAverage(t *testing.T) {
	p := projector.NewDefault()

	series := models.CareerSeries{
		season("2022-23", 80, 10, 4, 2),
		season("2023-24", 80, 20, 6, 4),
		season("2024-25", 80, 30, 8, 6),
	}

	projection, err := p.Season(series, models.MethodCareerAverage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if projection.SeasonsAnalyzed != 3 {
		t.Errorf("SeasonsAnalyzed = %d, want 3", projection.SeasonsAnalyzed)
	}
	if projection.ProjectedPerGame.Points != 20.0 {
		t.Errorf("per-game points = %f, want 20.0", projection.ProjectedPerGame.Points)
	}
	if projection.ProjectedPerGame.Rebounds != 6.0 {
		t.Errorf("per-game rebounds = %f, want 6.0", projection.ProjectedPerGame.Rebounds)
	}
	if projection.AdjustmentFactor != nil {
		t.Errorf("career_average should not carry an adjustment factor")
	}
}

func TestSeasonRecentSeasonsWeighting(t *testing.T) {
	p := projector.NewDefault()

	// Five seasons; only the last three count, weighted 1/2/3 oldest to
	// newest within the slice: (10*1 + 20*2 + 30*3) / 6 = 23.333 → 23.3
	series := models.CareerSeries{
		season("2020-21", 80, 99, 5, 5),
		season("2021-22", 80, 99, 5, 5),
		season("2022-23", 80, 10, 5, 5),
		season("2023-24", 80, 20, 5, 5),
		season("2024-25", 80, 30, 5, 5),
	}

	projection, err := p.Season(series, models.MethodRecentSeasons)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if projection.ProjectedPerGame.Points != 23.3 {
		t.Errorf("per-game points = %f, want 23.3", projection.ProjectedPerGame.Points)
	}
}

func TestSeasonRecentSeasonsShortCareer(t *testing.T) {
	p := projector.NewDefault()

	// Two-season career: weights collapse to 1/2
	series := models.CareerSeries{
		season("2023-24", 80, 12, 5, 5),
		season("2024-25", 80, 18, 5, 5),
	}

	projection, err := p.Season(series, models.MethodRecentSeasons)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// (12*1 + 18*2) / 3 = 16
	if projection.ProjectedPerGame.Points != 16.0 {
		t.Errorf("per-game points = %f, want 16.0", projection.ProjectedPerGame.Points)
	}
}

func TestSeasonAgeAdjusted(t *testing.T) {
	p := projector.NewDefault()

	tests := []struct {
		name       string
		series     models.CareerSeries
		wantFactor float64
	}{
		{
			name: "Flat career gets factor 1.0",
			series: models.CareerSeries{
				season("2022-23", 80, 20, 6, 4),
				season("2023-24", 80, 20, 6, 4),
				season("2024-25", 80, 20, 6, 4),
			},
			wantFactor: 1.0,
		},
		{
			name: "Steep decline clamps at the floor",
			series: models.CareerSeries{
				season("2019-20", 80, 30, 10, 8),
				season("2020-21", 80, 30, 10, 8),
				season("2021-22", 80, 30, 10, 8),
				season("2022-23", 80, 10, 3, 2),
				season("2023-24", 80, 10, 3, 2),
				season("2024-25", 80, 10, 3, 2),
			},
			wantFactor: 0.85,
		},
		{
			name: "Improvement is capped at 1.0, never projected upward",
			series: models.CareerSeries{
				season("2021-22", 80, 10, 3, 2),
				season("2022-23", 80, 10, 3, 2),
				season("2023-24", 80, 25, 8, 6),
				season("2024-25", 80, 30, 10, 8),
			},
			wantFactor: 1.0,
		},
		{
			name: "Career shorter than three seasons defaults to 1.0",
			series: models.CareerSeries{
				season("2023-24", 80, 25, 8, 6),
				season("2024-25", 80, 15, 5, 3),
			},
			wantFactor: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projection, err := p.Season(tt.series, models.MethodAgeAdjusted)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if projection.AdjustmentFactor == nil {
				t.Fatal("age_adjusted must report its adjustment factor")
			}

			factor := *projection.AdjustmentFactor
			if math.Abs(factor-tt.wantFactor) > 1e-9 {
				t.Errorf("adjustment factor = %f, want %f", factor, tt.wantFactor)
			}

			// Invariant from the method definition: the factor never leaves
			// [0.85, 1.0] regardless of input
			if factor < 0.85 || factor > 1.0 {
				t.Errorf("adjustment factor %f outside [0.85, 1.0]", factor)
			}
		})
	}
}

func TestSeasonTotalsFollowPerGame(t *testing.T) {
	p := projector.NewDefault()

	series := models.CareerSeries{
		season("2022-23", 73, 21.7, 6.3, 4.9),
		season("2023-24", 68, 24.1, 7.1, 5.2),
		season("2024-25", 77, 26.4, 7.8, 5.6),
	}

	for _, method := range []models.Method{
		models.MethodCareerAverage, models.MethodRecentSeasons, models.MethodAgeAdjusted,
	} {
		projection, err := p.Season(series, method)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", method, err)
		}

		// Season totals are the rounded per-game line times 82
		wantPoints := math.Round(projection.ProjectedPerGame.Points * 82)
		if projection.ProjectedSeasonTotals.Points != wantPoints {
			t.Errorf("%s: season points = %f, want %f", method, projection.ProjectedSeasonTotals.Points, wantPoints)
		}
		if projection.ProjectedSeasonTotals.Games != 82 {
			t.Errorf("%s: season games = %d, want 82", method, projection.ProjectedSeasonTotals.Games)
		}

		// Fantasy season total is the per-game value times 82
		wantFantasy := math.Round(projection.ProjectedFantasyPointsPG*82*10) / 10
		if projection.ProjectedFantasyPointsTotal != wantFantasy {
			t.Errorf("%s: fantasy season total = %f, want %f", method, projection.ProjectedFantasyPointsTotal, wantFantasy)
		}
	}
}

func TestSeasonZeroGamesPlayedGuard(t *testing.T) {
	p := projector.NewDefault()

	// A zero-games season must not divide by zero; it is normalized against
	// a substitute divisor of 1 and simply drags the average down.
	series := models.CareerSeries{
		{Season: "2023-24", Games: 0},
		season("2024-25", 80, 20, 6, 4),
	}

	projection, err := p.Season(series, models.MethodCareerAverage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if projection.ProjectedPerGame.Points != 10.0 {
		t.Errorf("per-game points = %f, want 10.0", projection.ProjectedPerGame.Points)
	}
}

func TestSeasonFantasyFormula(t *testing.T) {
	p := projector.NewDefault()

	// Per-game 20/6/4 with 2 threes, nothing else:
	// 20 + 6 + 4*1.5 + 2 = 34
	series := models.CareerSeries{season("2024-25", 80, 20, 6, 4)}

	projection, err := p.Season(series, models.MethodCareerAverage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if projection.ProjectedFantasyPointsPG != 34.0 {
		t.Errorf("fantasy ppg = %f, want 34.0", projection.ProjectedFantasyPointsPG)
	}
	if projection.ProjectedFantasyPointsTotal != 2788.0 {
		t.Errorf("fantasy season total = %f, want 2788.0", projection.ProjectedFantasyPointsTotal)
	}
}
