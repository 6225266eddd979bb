package projector

import (
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// ClassifyTrend labels a player's direction over a recent-game window by
// comparing the two halves of the window.
//
// The window is most-recent-first, so window[:mid] is the chronologically
// newer half and window[mid:] the older half. The comparison is always
// newer against older.
func (p *Projector) ClassifyTrend(window models.RecentWindow) models.Trend {
	if len(window) < p.config.TrendMinGames {
		return models.TrendInsufficientData
	}

	mid := len(window) / 2
	newer := window[:mid]
	older := window[mid:]

	newerMeans := halfMeans(newer)
	olderMeans := halfMeans(older)

	// Percentage change per stat, averaged across the three stats. A stat
	// whose older mean is zero is skipped rather than treated as infinite
	// growth.
	var changes []float64
	for i := range olderMeans {
		if olderMeans[i] == 0 {
			continue
		}
		changes = append(changes, (newerMeans[i]-olderMeans[i])/olderMeans[i]*100)
	}

	if len(changes) == 0 {
		return models.TrendStable
	}

	pctChange := statmath.Mean(changes)

	switch {
	case pctChange > p.config.TrendThresholdPct:
		return models.TrendUp
	case pctChange < -p.config.TrendThresholdPct:
		return models.TrendDown
	default:
		return models.TrendStable
	}
}

// halfMeans returns the mean points, rebounds and assists of a half-window
func halfMeans(games []models.GameLine) [3]float64 {
	var means [3]float64
	means[0] = statmath.Mean(pluck(games, func(g models.GameLine) float64 { return g.Points }))
	means[1] = statmath.Mean(pluck(games, func(g models.GameLine) float64 { return g.Rebounds }))
	means[2] = statmath.Mean(pluck(games, func(g models.GameLine) float64 { return g.Assists }))
	return means
}

// pluck extracts one stat from each game, preserving order
func pluck(games []models.GameLine, stat func(models.GameLine) float64) []float64 {
	values := make([]float64, len(games))
	for i, g := range games {
		values[i] = stat(g)
	}
	return values
}
