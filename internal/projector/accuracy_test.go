package projector_test

import (
	"errors"
	"testing"

	"github.com/courtside/hoopcast/services/projection-service/internal/projector"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

func TestAccuracyInsufficientGames(t *testing.T) {
	p := projector.NewDefault()

	window := gamesWithPoints(20, 20, 20, 20, 20, 20, 20, 20, 20, 20)

	// 10 games cannot back-test a 10-game projection
	_, err := p.Accuracy(window, 10)
	if !errors.Is(err, projector.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}

	if _, err := p.Accuracy(window, 0); !errors.Is(err, projector.ErrInsufficientData) {
		t.Errorf("numGamesBack=0 error = %v, want ErrInsufficientData", err)
	}
}

func TestAccuracyIdenticalGames(t *testing.T) {
	p := projector.NewDefault()

	window := make(models.RecentWindow, 20)
	for i := range window {
		window[i] = models.GameLine{Points: 22, Rebounds: 8, Assists: 6}
	}

	report, err := p.Accuracy(window, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Identical games project perfectly
	if report.OverallAccuracy != 100.0 {
		t.Errorf("OverallAccuracy = %f, want 100.0", report.OverallAccuracy)
	}
	if report.ValidationGames != 10 {
		t.Errorf("ValidationGames = %d, want 10", report.ValidationGames)
	}

	for _, stat := range []string{"points", "rebounds", "assists"} {
		entry, ok := report.Accuracy[stat]
		if !ok {
			t.Fatalf("missing stat %q in report", stat)
		}
		if entry.Accuracy != 100.0 {
			t.Errorf("%s accuracy = %f, want 100.0", stat, entry.Accuracy)
		}
		if entry.Error != 0.0 {
			t.Errorf("%s error = %f, want 0.0", stat, entry.Error)
		}
		if entry.Projected != entry.Actual {
			t.Errorf("%s projected %f != actual %f", stat, entry.Projected, entry.Actual)
		}
	}
}

func TestAccuracySplitDirection(t *testing.T) {
	p := projector.NewDefault()

	// Newer half (validation, indexes 0-4) scores 30; older half
	// (training, indexes 5-9) scores 10. The projection trains on the
	// OLDER games, so projected points must sit near 10 and actual at 30.
	window := gamesWithPoints(30, 30, 30, 30, 30, 10, 10, 10, 10, 10)

	report, err := p.Accuracy(window, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	points := report.Accuracy["points"]
	if points.Actual != 30.0 {
		t.Errorf("actual points = %f, want 30.0 (validation is the newer half)", points.Actual)
	}
	if points.Projected != 10.0 {
		t.Errorf("projected points = %f, want 10.0 (training is the older half)", points.Projected)
	}
}

func TestAccuracyCanGoNegative(t *testing.T) {
	p := projector.NewDefault()

	// Training games at 50, validation at 10: error 40 against actual 10 is
	// a 400% miss, so accuracy = 100 - 400 = -300. It must not be clamped.
	window := gamesWithPoints(10, 10, 10, 50, 50, 50)

	report, err := p.Accuracy(window, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	points := report.Accuracy["points"]
	if points.Accuracy != -300.0 {
		t.Errorf("points accuracy = %f, want -300.0", points.Accuracy)
	}
}

func TestAccuracyZeroActualGuard(t *testing.T) {
	p := projector.NewDefault()

	// Scoreless validation games: percentage error is undefined, treated
	// as zero so the stat reports 100.
	window := models.RecentWindow{
		{}, {}, {},
		{Points: 12, Rebounds: 4, Assists: 3},
		{Points: 12, Rebounds: 4, Assists: 3},
		{Points: 12, Rebounds: 4, Assists: 3},
	}

	report, err := p.Accuracy(window, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Accuracy["points"].Accuracy != 100.0 {
		t.Errorf("points accuracy = %f, want 100.0", report.Accuracy["points"].Accuracy)
	}
}
