package projector

import (
	"github.com/courtside/hoopcast/services/projection-service/internal/scoring"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// NextGame projects a player's next single game from their recent window.
// The window must be most-recent-first; weights are built increasing and
// reversed so the latest game carries the most influence.
func (p *Projector) NextGame(window models.RecentWindow) (*models.NextGameProjection, error) {
	if len(window) == 0 {
		return nil, ErrInsufficientData
	}

	weights := statmath.Reverse(statmath.ExpWeights(len(window), p.config.WeightSpread))

	projected := models.StatLine{
		Minutes:       weightedStat(window, weights, func(g models.GameLine) float64 { return g.Minutes }),
		Points:        weightedStat(window, weights, func(g models.GameLine) float64 { return g.Points }),
		Rebounds:      weightedStat(window, weights, func(g models.GameLine) float64 { return g.Rebounds }),
		Assists:       weightedStat(window, weights, func(g models.GameLine) float64 { return g.Assists }),
		Steals:        weightedStat(window, weights, func(g models.GameLine) float64 { return g.Steals }),
		Blocks:        weightedStat(window, weights, func(g models.GameLine) float64 { return g.Blocks }),
		Turnovers:     weightedStat(window, weights, func(g models.GameLine) float64 { return g.Turnovers }),
		ThreePointers: weightedStat(window, weights, func(g models.GameLine) float64 { return g.ThreePM }),
	}

	projection := &models.NextGameProjection{
		Method:         models.MethodWeightedRecent,
		GamesAnalyzed:  len(window),
		ProjectedStats: projected,
		RecentPerformance: models.RecentPerformance{
			Last5Avg:  trailingAverage(window, 5),
			Last10Avg: trailingAverage(window, len(window)),
			Trend:     p.ClassifyTrend(window),
		},
		// Game logs carry no offensive-rebound split, so the projection is
		// scored with OREB at zero. Callers wanting custom weights re-score
		// ProjectedStats themselves.
		ProjectedFantasyPoints: scoring.ScoreStatLine(projected, scoring.DefaultWeights()),
	}

	return projection, nil
}

// weightedStat is a rounded recency-weighted average of one stat
func weightedStat(window models.RecentWindow, weights []float64, stat func(models.GameLine) float64) float64 {
	return statmath.Round1(statmath.WeightedAverage(pluck(window, stat), weights))
}

// trailingAverage is the unweighted pts/reb/ast mean over the most recent n
// games (or the whole window when shorter)
func trailingAverage(window models.RecentWindow, n int) models.TrailingAverage {
	if n > len(window) {
		n = len(window)
	}
	slice := window[:n]

	return models.TrailingAverage{
		Points:   statmath.Round1(statmath.Mean(pluck(slice, func(g models.GameLine) float64 { return g.Points }))),
		Rebounds: statmath.Round1(statmath.Mean(pluck(slice, func(g models.GameLine) float64 { return g.Rebounds }))),
		Assists:  statmath.Round1(statmath.Mean(pluck(slice, func(g models.GameLine) float64 { return g.Assists }))),
	}
}
