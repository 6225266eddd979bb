package models

import "time"

// GameLine represents one game's counting stats for a player
// Missing stats are simply zero values; the source never reports negatives
type GameLine struct {
	GameDate  time.Time `json:"game_date"`
	Matchup   string    `json:"matchup,omitempty"`
	Result    string    `json:"result,omitempty"` // "W" or "L"
	Minutes   float64   `json:"minutes"`
	Points    float64   `json:"points"`
	Rebounds  float64   `json:"rebounds"`
	Assists   float64   `json:"assists"`
	Steals    float64   `json:"steals"`
	Blocks    float64   `json:"blocks"`
	Turnovers float64   `json:"turnovers"`
	FGM       float64   `json:"fgm"`
	FGA       float64   `json:"fga"`
	ThreePM   float64   `json:"three_pm"`
	ThreePA   float64   `json:"three_pa"`
	FTM       float64   `json:"ftm"`
	FTA       float64   `json:"fta"`
	OffReb    float64   `json:"oreb"`
	PlusMinus float64   `json:"plus_minus"`
}

// RecentWindow is a player's game log ordered MOST RECENT FIRST, exactly as
// the stats source delivers it. Index 0 is the latest game played.
//
// Every half-split in this codebase follows from that ordering: a slice
// window[:mid] is the chronologically NEWER half and window[mid:] the OLDER
// half, which looks inverted relative to calendar time. Callers must never
// reorder a RecentWindow; code that needs chronological weights reverses the
// weight slice instead (see statmath.Reverse).
type RecentWindow []GameLine

// SeasonLine represents one season's aggregate totals for a player.
// Totals, not per-game rates; Games is the per-season games-played count.
type SeasonLine struct {
	Season    string  `json:"season"` // e.g. "2024-25"
	Games     float64 `json:"games"`
	Minutes   float64 `json:"minutes"`
	Points    float64 `json:"points"`
	Rebounds  float64 `json:"rebounds"`
	Assists   float64 `json:"assists"`
	Steals    float64 `json:"steals"`
	Blocks    float64 `json:"blocks"`
	Turnovers float64 `json:"turnovers"`
	ThreePM   float64 `json:"three_pm"`
	FGM       float64 `json:"fgm"`
	FGA       float64 `json:"fga"`
	FTM       float64 `json:"ftm"`
	FTA       float64 `json:"fta"`
	OffReb    float64 `json:"oreb"`
}

// CareerSeries is a player's season-by-season totals ordered OLDEST FIRST,
// as the stats source delivers career tables. Index 0 is the rookie season.
type CareerSeries []SeasonLine
