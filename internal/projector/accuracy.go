package projector

import (
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// Accuracy back-tests the recency-weighted projector. The window must hold
// at least 2×numGamesBack games, most-recent-first: the OLDER half
// (window[numGamesBack:]) trains the projection and the NEWER half
// (window[:numGamesBack]) validates it.
func (p *Projector) Accuracy(window models.RecentWindow, numGamesBack int) (*models.AccuracyReport, error) {
	if numGamesBack <= 0 || len(window) < numGamesBack*2 {
		return nil, ErrInsufficientData
	}

	training := window[numGamesBack:]
	validation := window[:numGamesBack]

	weights := statmath.Reverse(statmath.ExpWeights(len(training), p.config.WeightSpread))

	stats := []struct {
		name string
		get  func(models.GameLine) float64
	}{
		{"points", func(g models.GameLine) float64 { return g.Points }},
		{"rebounds", func(g models.GameLine) float64 { return g.Rebounds }},
		{"assists", func(g models.GameLine) float64 { return g.Assists }},
	}

	accuracy := make(map[string]models.StatAccuracy, len(stats))
	var overall []float64

	for _, stat := range stats {
		projected := statmath.WeightedAverage(pluck(training, stat.get), weights)
		actual := statmath.Mean(pluck(validation, stat.get))

		delta := projected - actual
		if delta < 0 {
			delta = -delta
		}

		// Zero actual means zero error. Accuracy is never clamped and goes
		// negative when the error exceeds 100% of actual.
		pctError := 0.0
		if actual > 0 {
			pctError = delta / actual * 100
		}

		accuracy[stat.name] = models.StatAccuracy{
			Projected: statmath.Round1(projected),
			Actual:    statmath.Round1(actual),
			Error:     statmath.Round1(delta),
			Accuracy:  statmath.Round1(100 - pctError),
		}
		overall = append(overall, accuracy[stat.name].Accuracy)
	}

	return &models.AccuracyReport{
		ValidationGames: numGamesBack,
		Accuracy:        accuracy,
		OverallAccuracy: statmath.Round1(statmath.Mean(overall)),
	}, nil
}
