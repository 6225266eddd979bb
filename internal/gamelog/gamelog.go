// Package gamelog enriches raw game lines with derived stats: shooting
// percentages, fantasy points under a scoring configuration, and the
// per-minute efficiency proxy.
package gamelog

import (
	"github.com/courtside/hoopcast/services/projection-service/internal/scoring"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// EnrichedGame is a game line plus its derived stats
type EnrichedGame struct {
	models.GameLine

	FGPct         float64 `json:"fg_pct"`
	ThreePct      float64 `json:"three_pct"`
	FTPct         float64 `json:"ft_pct"`
	FantasyPoints float64 `json:"fantasy_points"`
	PER           float64 `json:"per"`
}

// Enrich derives percentages, fantasy points and the efficiency proxy for
// every game in the window, preserving order
func Enrich(window models.RecentWindow, weights scoring.Weights) []EnrichedGame {
	enriched := make([]EnrichedGame, len(window))
	for i, game := range window {
		enriched[i] = EnrichedGame{
			GameLine:      game,
			FGPct:         shootingPct(game.FGM, game.FGA),
			ThreePct:      shootingPct(game.ThreePM, game.ThreePA),
			FTPct:         shootingPct(game.FTM, game.FTA),
			FantasyPoints: scoring.Score(game, weights),
			PER:           scoring.PERProxy(game),
		}
	}
	return enriched
}

// shootingPct guards zero-attempt games by dividing by 1 instead
func shootingPct(made, attempted float64) float64 {
	if attempted == 0 {
		attempted = 1
	}
	return statmath.Round1(made / attempted * 100)
}

// SeasonAverages aggregates an enriched game log into per-game averages,
// win percentage and season totals
type SeasonAverages struct {
	GamesPlayed int     `json:"games_played"`
	Wins        int     `json:"wins"`
	WinPct      float64 `json:"win_pct"`

	Minutes   float64 `json:"minutes"`
	Points    float64 `json:"points"`
	Rebounds  float64 `json:"rebounds"`
	Assists   float64 `json:"assists"`
	Steals    float64 `json:"steals"`
	Blocks    float64 `json:"blocks"`
	Turnovers float64 `json:"turnovers"`

	FGM      float64 `json:"fgm"`
	FGA      float64 `json:"fga"`
	FGPct    float64 `json:"fg_pct"`
	ThreePM  float64 `json:"three_pm"`
	ThreePA  float64 `json:"three_pa"`
	ThreePct float64 `json:"three_pct"`
	FTM      float64 `json:"ftm"`
	FTA      float64 `json:"fta"`
	FTPct    float64 `json:"ft_pct"`

	OffReb    float64 `json:"oreb"`
	PlusMinus float64 `json:"plus_minus"`

	FantasyPoints float64 `json:"fantasy_points"`
	PER           float64 `json:"per"`

	TotalPoints   float64 `json:"total_points"`
	TotalRebounds float64 `json:"total_rebounds"`
	TotalAssists  float64 `json:"total_assists"`
	TotalFantasy  float64 `json:"total_fantasy"`
}

// Averages summarizes a game log under the given scoring weights.
// Returns nil for an empty window.
func Averages(window models.RecentWindow, weights scoring.Weights) *SeasonAverages {
	if len(window) == 0 {
		return nil
	}

	enriched := Enrich(window, weights)

	wins := 0
	for _, game := range enriched {
		if game.Result == "W" {
			wins++
		}
	}

	mean := func(stat func(EnrichedGame) float64) float64 {
		values := make([]float64, len(enriched))
		for i, g := range enriched {
			values[i] = stat(g)
		}
		return statmath.Round1(statmath.Mean(values))
	}
	sum := func(stat func(EnrichedGame) float64) float64 {
		var total float64
		for _, g := range enriched {
			total += stat(g)
		}
		return statmath.Round1(total)
	}

	return &SeasonAverages{
		GamesPlayed: len(enriched),
		Wins:        wins,
		WinPct:      statmath.Round1(float64(wins) / float64(len(enriched)) * 100),

		Minutes:   mean(func(g EnrichedGame) float64 { return g.Minutes }),
		Points:    mean(func(g EnrichedGame) float64 { return g.Points }),
		Rebounds:  mean(func(g EnrichedGame) float64 { return g.Rebounds }),
		Assists:   mean(func(g EnrichedGame) float64 { return g.Assists }),
		Steals:    mean(func(g EnrichedGame) float64 { return g.Steals }),
		Blocks:    mean(func(g EnrichedGame) float64 { return g.Blocks }),
		Turnovers: mean(func(g EnrichedGame) float64 { return g.Turnovers }),

		FGM:      mean(func(g EnrichedGame) float64 { return g.FGM }),
		FGA:      mean(func(g EnrichedGame) float64 { return g.FGA }),
		FGPct:    mean(func(g EnrichedGame) float64 { return g.FGPct }),
		ThreePM:  mean(func(g EnrichedGame) float64 { return g.ThreePM }),
		ThreePA:  mean(func(g EnrichedGame) float64 { return g.ThreePA }),
		ThreePct: mean(func(g EnrichedGame) float64 { return g.ThreePct }),
		FTM:      mean(func(g EnrichedGame) float64 { return g.FTM }),
		FTA:      mean(func(g EnrichedGame) float64 { return g.FTA }),
		FTPct:    mean(func(g EnrichedGame) float64 { return g.FTPct }),

		OffReb:    mean(func(g EnrichedGame) float64 { return g.OffReb }),
		PlusMinus: mean(func(g EnrichedGame) float64 { return g.PlusMinus }),

		FantasyPoints: mean(func(g EnrichedGame) float64 { return g.FantasyPoints }),
		PER:           mean(func(g EnrichedGame) float64 { return g.PER }),

		TotalPoints:   sum(func(g EnrichedGame) float64 { return g.Points }),
		TotalRebounds: sum(func(g EnrichedGame) float64 { return g.Rebounds }),
		TotalAssists:  sum(func(g EnrichedGame) float64 { return g.Assists }),
		TotalFantasy:  sum(func(g EnrichedGame) float64 { return g.FantasyPoints }),
	}
}
