package projector

import (
	"math"

	"github.com/courtside/hoopcast/services/projection-service/internal/scoring"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// perGameLine is one season normalized to per-game rates
type perGameLine struct {
	Minutes       float64
	Points        float64
	Rebounds      float64
	Assists       float64
	Steals        float64
	Blocks        float64
	Turnovers     float64
	ThreePointers float64
}

// Season projects a player's next full season from their career
// season-by-season totals (oldest first) using the requested method.
func (p *Projector) Season(series models.CareerSeries, method models.Method) (*models.SeasonProjection, error) {
	if len(series) == 0 {
		return nil, ErrInsufficientData
	}

	perGame := normalizePerGame(series)

	projection := &models.SeasonProjection{
		Method:          method,
		SeasonsAnalyzed: len(series),
	}

	switch method {
	case models.MethodCareerAverage:
		projection.ProjectedPerGame = careerAverage(perGame)

	case models.MethodRecentSeasons:
		projection.ProjectedPerGame = p.recentSeasons(perGame)

	case models.MethodAgeAdjusted:
		line, factor := p.ageAdjusted(perGame)
		projection.ProjectedPerGame = line
		projection.AdjustmentFactor = &factor

	default:
		return nil, ErrUnknownMethod
	}

	projection.ProjectedSeasonTotals = p.extrapolate(projection.ProjectedPerGame)
	projection.ProjectedFantasyPointsPG = scoring.ScoreStatLine(projection.ProjectedPerGame, scoring.DefaultWeights())
	projection.ProjectedFantasyPointsTotal = statmath.Round1(projection.ProjectedFantasyPointsPG * float64(p.config.SeasonLength))

	return projection, nil
}

// normalizePerGame divides each season's totals by its games played.
// A zero games-played season divides by 1 instead.
func normalizePerGame(series models.CareerSeries) []perGameLine {
	perGame := make([]perGameLine, len(series))
	for i, season := range series {
		games := season.Games
		if games == 0 {
			games = 1
		}

		perGame[i] = perGameLine{
			Minutes:       season.Minutes / games,
			Points:        season.Points / games,
			Rebounds:      season.Rebounds / games,
			Assists:       season.Assists / games,
			Steals:        season.Steals / games,
			Blocks:        season.Blocks / games,
			Turnovers:     season.Turnovers / games,
			ThreePointers: season.ThreePM / games,
		}
	}
	return perGame
}

// careerAverage is the simple mean of every season's per-game line
func careerAverage(perGame []perGameLine) models.StatLine {
	return roundedLine(meanLine(perGame))
}

// recentSeasons weights the trailing seasons with an increasing integer
// sequence 1..k aligned oldest to newest, so the latest season dominates
func (p *Projector) recentSeasons(perGame []perGameLine) models.StatLine {
	recent := tail(perGame, p.config.RecentSeasonCount)

	weights := make([]float64, len(recent))
	for i := range weights {
		weights[i] = float64(i + 1)
	}

	return roundedLine(weightedLine(recent, weights))
}

// ageAdjusted scales the recent-seasons mean by a decline factor derived
// from how the trailing seasons compare to the full career. The factor is
// clamped so the method never projects an increase and caps the decline.
func (p *Projector) ageAdjusted(perGame []perGameLine) (models.StatLine, float64) {
	recent := tail(perGame, p.config.RecentSeasonCount)

	adjustment := 1.0
	if len(perGame) >= p.config.RecentSeasonCount {
		recentMean := meanLine(recent)
		careerMean := meanLine(perGame)

		var ratios []float64
		for _, pair := range [][2]float64{
			{recentMean.Points, careerMean.Points},
			{recentMean.Rebounds, careerMean.Rebounds},
			{recentMean.Assists, careerMean.Assists},
		} {
			if pair[1] == 0 {
				continue
			}
			ratios = append(ratios, pair[0]/pair[1])
		}

		if len(ratios) > 0 {
			adjustment = statmath.Mean(ratios)
		}

		adjustment = math.Min(p.config.AgeAdjustCeil, math.Max(p.config.AgeAdjustFloor, adjustment))
	}

	base := meanLine(recent)
	adjusted := perGameLine{
		Minutes:       base.Minutes * adjustment,
		Points:        base.Points * adjustment,
		Rebounds:      base.Rebounds * adjustment,
		Assists:       base.Assists * adjustment,
		Steals:        base.Steals * adjustment,
		Blocks:        base.Blocks * adjustment,
		Turnovers:     base.Turnovers * adjustment,
		ThreePointers: base.ThreePointers * adjustment,
	}

	return roundedLine(adjusted), math.Round(adjustment*1000) / 1000
}

// extrapolate multiplies a rounded per-game line out to a full season,
// rounding each total to the nearest whole number
func (p *Projector) extrapolate(line models.StatLine) models.SeasonTotals {
	games := float64(p.config.SeasonLength)
	return models.SeasonTotals{
		Games:         p.config.SeasonLength,
		Minutes:       math.Round(line.Minutes * games),
		Points:        math.Round(line.Points * games),
		Rebounds:      math.Round(line.Rebounds * games),
		Assists:       math.Round(line.Assists * games),
		Steals:        math.Round(line.Steals * games),
		Blocks:        math.Round(line.Blocks * games),
		Turnovers:     math.Round(line.Turnovers * games),
		ThreePointers: math.Round(line.ThreePointers * games),
	}
}

// tail returns the last n elements (or all of them when shorter)
func tail(perGame []perGameLine, n int) []perGameLine {
	if len(perGame) <= n {
		return perGame
	}
	return perGame[len(perGame)-n:]
}

// meanLine averages each stat across seasons
func meanLine(perGame []perGameLine) perGameLine {
	return weightedLine(perGame, nil)
}

// weightedLine computes a weighted mean of each stat across seasons.
// Nil weights mean a plain average.
func weightedLine(perGame []perGameLine, weights []float64) perGameLine {
	if weights == nil {
		weights = make([]float64, len(perGame))
		for i := range weights {
			weights[i] = 1
		}
	}

	avg := func(stat func(perGameLine) float64) float64 {
		values := make([]float64, len(perGame))
		for i, line := range perGame {
			values[i] = stat(line)
		}
		return statmath.WeightedAverage(values, weights)
	}

	return perGameLine{
		Minutes:       avg(func(l perGameLine) float64 { return l.Minutes }),
		Points:        avg(func(l perGameLine) float64 { return l.Points }),
		Rebounds:      avg(func(l perGameLine) float64 { return l.Rebounds }),
		Assists:       avg(func(l perGameLine) float64 { return l.Assists }),
		Steals:        avg(func(l perGameLine) float64 { return l.Steals }),
		Blocks:        avg(func(l perGameLine) float64 { return l.Blocks }),
		Turnovers:     avg(func(l perGameLine) float64 { return l.Turnovers }),
		ThreePointers: avg(func(l perGameLine) float64 { return l.ThreePointers }),
	}
}

// roundedLine rounds every stat to one decimal place
func roundedLine(line perGameLine) models.StatLine {
	return models.StatLine{
		Minutes:       statmath.Round1(line.Minutes),
		Points:        statmath.Round1(line.Points),
		Rebounds:      statmath.Round1(line.Rebounds),
		Assists:       statmath.Round1(line.Assists),
		Steals:        statmath.Round1(line.Steals),
		Blocks:        statmath.Round1(line.Blocks),
		Turnovers:     statmath.Round1(line.Turnovers),
		ThreePointers: statmath.Round1(line.ThreePointers),
	}
}
