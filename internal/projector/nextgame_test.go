package projector_test

import (
	"errors"
	"math"
	"testing"

	"github.com/courtside/hoopcast/services/projection-service/internal/projector"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

func TestNextGameEmptyWindow(t *testing.T) {
	p := projector.NewDefault()

	_, err := p.NextGame(nil)
	if !errors.Is(err, projector.ErrInsufficientData) {
		t.Errorf("NextGame(nil) error = %v, want ErrInsufficientData", err)
	}
}

func TestNextGameRecencyBias(t *testing.T) {
	p := projector.NewDefault()

	// Declining scorer, most-recent-first: latest game is 30, unweighted
	// mean is 18.8. Exponential recency weighting must land strictly
	// between the two.
	window := gamesWithPoints(30, 28, 25, 22, 20, 18, 15, 12, 10, 8)

	projection, err := p.NextGame(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pts := projection.ProjectedStats.Points
	if pts <= 18.8 {
		t.Errorf("projected points %f should exceed unweighted mean 18.8", pts)
	}
	if pts >= 30 {
		t.Errorf("projected points %f should stay below most recent game 30", pts)
	}

	if projection.GamesAnalyzed != 10 {
		t.Errorf("GamesAnalyzed = %d, want 10", projection.GamesAnalyzed)
	}
	if projection.Method != models.MethodWeightedRecent {
		t.Errorf("Method = %s, want %s", projection.Method, models.MethodWeightedRecent)
	}
}

func TestNextGameConstantWindow(t *testing.T) {
	p := projector.NewDefault()

	window := models.RecentWindow{}
	for i := 0; i < 10; i++ {
		window = append(window, models.GameLine{
			Minutes: 34, Points: 20, Rebounds: 8, Assists: 6,
			Steals: 1, Blocks: 1, Turnovers: 2, ThreePM: 2,
		})
	}

	projection, err := p.NextGame(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Any weighting of a constant series is the constant
	stats := projection.ProjectedStats
	checks := map[string][2]float64{
		"minutes":   {stats.Minutes, 34},
		"points":    {stats.Points, 20},
		"rebounds":  {stats.Rebounds, 8},
		"assists":   {stats.Assists, 6},
		"steals":    {stats.Steals, 1},
		"blocks":    {stats.Blocks, 1},
		"turnovers": {stats.Turnovers, 2},
		"threes":    {stats.ThreePointers, 2},
	}
	for name, pair := range checks {
		if math.Abs(pair[0]-pair[1]) > 1e-9 {
			t.Errorf("%s = %f, want %f", name, pair[0], pair[1])
		}
	}

	// 20 + 8 + 6*1.5 + 1*2 + 1*2 - 2*2 + 2 = 39 under default weights
	if projection.ProjectedFantasyPoints != 39.0 {
		t.Errorf("ProjectedFantasyPoints = %f, want 39.0", projection.ProjectedFantasyPoints)
	}

	if projection.RecentPerformance.Trend != models.TrendStable {
		t.Errorf("Trend = %s, want %s", projection.RecentPerformance.Trend, models.TrendStable)
	}
}

func TestNextGameTrailingAverages(t *testing.T) {
	p := projector.NewDefault()

	window := gamesWithPoints(30, 30, 30, 30, 30, 10, 10, 10, 10, 10)

	projection, err := p.NextGame(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if projection.RecentPerformance.Last5Avg.Points != 30.0 {
		t.Errorf("Last5Avg.Points = %f, want 30.0", projection.RecentPerformance.Last5Avg.Points)
	}
	if projection.RecentPerformance.Last10Avg.Points != 20.0 {
		t.Errorf("Last10Avg.Points = %f, want 20.0", projection.RecentPerformance.Last10Avg.Points)
	}
}

func TestNextGameShortWindow(t *testing.T) {
	p := projector.NewDefault()

	// Three games: projectable, but too few for a trend
	window := gamesWithPoints(22, 18, 20)

	projection, err := p.NextGame(window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if projection.GamesAnalyzed != 3 {
		t.Errorf("GamesAnalyzed = %d, want 3", projection.GamesAnalyzed)
	}
	if projection.RecentPerformance.Trend != models.TrendInsufficientData {
		t.Errorf("Trend = %s, want %s", projection.RecentPerformance.Trend, models.TrendInsufficientData)
	}
	// Last-5 average covers whatever exists
	if projection.RecentPerformance.Last5Avg.Points != 20.0 {
		t.Errorf("Last5Avg.Points = %f, want 20.0", projection.RecentPerformance.Last5Avg.Points)
	}
}
