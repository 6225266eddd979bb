// Package rankings orders a slate of players by projected fantasy output.
package rankings

import (
	"sort"

	"github.com/courtside/hoopcast/services/projection-service/internal/projector"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

// PlayerInput is one player's historical data, as delivered by the stats
// source: recent games most-recent-first, career seasons oldest-first.
type PlayerInput struct {
	Player string
	Window models.RecentWindow
	Series models.CareerSeries
}

// Ranking is one player's slot in the fantasy board
type Ranking struct {
	Rank               int          `json:"rank"`
	Player             string       `json:"player"`
	FantasyPPG         float64      `json:"fantasy_ppg"`
	FantasySeasonTotal float64      `json:"fantasy_season_total"`
	ProjectedPoints    float64      `json:"projected_points"`
	ProjectedRebounds  float64      `json:"projected_rebounds"`
	ProjectedAssists   float64      `json:"projected_assists"`
	Trend              models.Trend `json:"trend"`
}

// Rank orders players by recent_seasons projected fantasy points per game,
// descending, and assigns 1-based rank numbers. Players whose career series
// cannot produce a projection are dropped from the board rather than ranked
// on garbage. Stable for equal fantasy values (input order breaks ties).
func Rank(p *projector.Projector, players []PlayerInput) []Ranking {
	board := make([]Ranking, 0, len(players))

	for _, input := range players {
		seasonProj, err := p.Season(input.Series, models.MethodRecentSeasons)
		if err != nil {
			continue
		}

		trend := models.TrendStable
		if nextGame, err := p.NextGame(input.Window); err == nil {
			trend = nextGame.RecentPerformance.Trend
		}

		board = append(board, Ranking{
			Player:             input.Player,
			FantasyPPG:         seasonProj.ProjectedFantasyPointsPG,
			FantasySeasonTotal: seasonProj.ProjectedFantasyPointsTotal,
			ProjectedPoints:    seasonProj.ProjectedPerGame.Points,
			ProjectedRebounds:  seasonProj.ProjectedPerGame.Rebounds,
			ProjectedAssists:   seasonProj.ProjectedPerGame.Assists,
			Trend:              trend,
		})
	}

	sort.SliceStable(board, func(i, j int) bool {
		return board[i].FantasyPPG > board[j].FantasyPPG
	})

	for i := range board {
		board[i].Rank = i + 1
	}

	return board
}
