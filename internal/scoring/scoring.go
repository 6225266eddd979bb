package scoring

import (
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// Score calculates fantasy points for one game line under the given
// weights. Missed-shot weights apply to (attempts - made), so leaving both
// shooting weights at zero means attempt data is never needed. The result
// is rounded to one decimal place.
func Score(line models.GameLine, w Weights) float64 {
	total := line.Points * w.Points
	total += line.Rebounds * w.Rebounds
	total += line.Assists * w.Assists
	total += line.Steals * w.Steals
	total += line.Blocks * w.Blocks
	total += line.Turnovers * w.Turnovers
	total += line.ThreePM * w.ThreePointers
	total += line.OffReb * w.OffensiveRebounds

	total += line.FGM * w.FieldGoalsMade
	total += (line.FGA - line.FGM) * w.FieldGoalsMissed
	total += line.FTM * w.FreeThrowsMade
	total += (line.FTA - line.FTM) * w.FreeThrowsMissed

	if w.DoubleDouble != 0 || w.TripleDouble != 0 {
		total += bonusFor(line, w)
	}

	return statmath.Round1(total)
}

// bonusFor returns the double-double or triple-double bonus earned by a
// game line. Categories counted: points, rebounds, assists, steals, blocks.
func bonusFor(line models.GameLine, w Weights) float64 {
	doubleDigit := 0
	for _, v := range []float64{line.Points, line.Rebounds, line.Assists, line.Steals, line.Blocks} {
		if v >= 10 {
			doubleDigit++
		}
	}

	switch {
	case doubleDigit >= 3:
		return w.TripleDouble
	case doubleDigit >= 2:
		return w.DoubleDouble
	default:
		return 0
	}
}

// ScoreSeason totals fantasy points over one season's aggregate line.
// Double-double and triple-double bonuses are per-game events and never
// apply to season aggregates.
func ScoreSeason(line models.SeasonLine, w Weights) float64 {
	total := line.Points * w.Points
	total += line.Rebounds * w.Rebounds
	total += line.Assists * w.Assists
	total += line.Steals * w.Steals
	total += line.Blocks * w.Blocks
	total += line.Turnovers * w.Turnovers
	total += line.ThreePM * w.ThreePointers
	total += line.OffReb * w.OffensiveRebounds

	total += line.FGM * w.FieldGoalsMade
	total += (line.FGA - line.FGM) * w.FieldGoalsMissed
	total += line.FTM * w.FreeThrowsMade
	total += (line.FTA - line.FTM) * w.FreeThrowsMissed

	return statmath.Round1(total)
}

// ScoreStatLine calculates fantasy points for a projected per-game stat
// line. Projections carry no shooting-attempt or offensive-rebound data, so
// those categories contribute nothing here.
func ScoreStatLine(line models.StatLine, w Weights) float64 {
	total := line.Points * w.Points
	total += line.Rebounds * w.Rebounds
	total += line.Assists * w.Assists
	total += line.Steals * w.Steals
	total += line.Blocks * w.Blocks
	total += line.Turnovers * w.Turnovers
	total += line.ThreePointers * w.ThreePointers

	return statmath.Round1(total)
}
