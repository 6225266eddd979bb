package scoring

import (
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// PERProxy computes a simplified per-minute efficiency metric:
//
//	((PTS + REB + AST + STL + BLK) - (TOV + missed FG + missed FT)) / MIN * 10
//
// This is NOT the league-adjusted Player Efficiency Rating; it is a cheap
// per-game proxy that needs no league averages. Zero minutes returns 0.
func PERProxy(line models.GameLine) float64 {
	if line.Minutes == 0 {
		return 0
	}

	positive := line.Points + line.Rebounds + line.Assists + line.Steals + line.Blocks
	negative := line.Turnovers + (line.FGA - line.FGM) + (line.FTA - line.FTM)

	return statmath.Round1((positive - negative) / line.Minutes * 10)
}
