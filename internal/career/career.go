// Package career reduces a player's season-by-season history to summary
// views: whole-career totals and per-game averages, and fantasy production
// season by season.
package career

import (
	"github.com/courtside/hoopcast/services/projection-service/internal/scoring"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
	"github.com/courtside/hoopcast/services/projection-service/pkg/statmath"
)

// Totals sums the counting stats across every season
type Totals struct {
	Points   float64 `json:"points"`
	Rebounds float64 `json:"rebounds"`
	Assists  float64 `json:"assists"`
	Steals   float64 `json:"steals"`
	Blocks   float64 `json:"blocks"`
}

// Averages are whole-career per-game rates
type Averages struct {
	PPG float64 `json:"ppg"`
	RPG float64 `json:"rpg"`
	APG float64 `json:"apg"`
	SPG float64 `json:"spg"`
	BPG float64 `json:"bpg"`
}

// Summary condenses a career series into totals and averages
type Summary struct {
	SeasonsPlayed  int      `json:"seasons_played"`
	TotalGames     float64  `json:"total_games"`
	CareerTotals   Totals   `json:"career_totals"`
	CareerAverages Averages `json:"career_averages"`
}

// Summarize builds the career summary for a season series. Returns nil for
// an empty series. Zero total games leaves the averages at zero.
func Summarize(series models.CareerSeries) *Summary {
	if len(series) == 0 {
		return nil
	}

	summary := &Summary{SeasonsPlayed: len(series)}
	for _, season := range series {
		summary.TotalGames += season.Games
		summary.CareerTotals.Points += season.Points
		summary.CareerTotals.Rebounds += season.Rebounds
		summary.CareerTotals.Assists += season.Assists
		summary.CareerTotals.Steals += season.Steals
		summary.CareerTotals.Blocks += season.Blocks
	}

	if summary.TotalGames > 0 {
		games := summary.TotalGames
		summary.CareerAverages = Averages{
			PPG: statmath.Round1(summary.CareerTotals.Points / games),
			RPG: statmath.Round1(summary.CareerTotals.Rebounds / games),
			APG: statmath.Round1(summary.CareerTotals.Assists / games),
			SPG: statmath.Round1(summary.CareerTotals.Steals / games),
			BPG: statmath.Round1(summary.CareerTotals.Blocks / games),
		}
	}

	return summary
}

// SeasonFantasy is one season's fantasy production
type SeasonFantasy struct {
	Season        string  `json:"season"`
	Games         float64 `json:"games"`
	FantasyPoints float64 `json:"fantasy_points"`
	FantasyPPG    float64 `json:"fantasy_ppg"`
}

// FantasyBySeason scores every season of a career under the given weights,
// oldest first as delivered. A zero-games season divides its per-game rate
// by 1 instead. Returns nil for an empty series.
func FantasyBySeason(series models.CareerSeries, w scoring.Weights) []SeasonFantasy {
	if len(series) == 0 {
		return nil
	}

	seasons := make([]SeasonFantasy, len(series))
	for i, season := range series {
		total := scoring.ScoreSeason(season, w)

		games := season.Games
		if games == 0 {
			games = 1
		}

		seasons[i] = SeasonFantasy{
			Season:        season.Season,
			Games:         season.Games,
			FantasyPoints: total,
			FantasyPPG:    statmath.Round1(total / games),
		}
	}

	return seasons
}
