package rankings_test

import (
	"testing"

	"github.com/courtside/hoopcast/services/projection-service/internal/projector"
	"github.com/courtside/hoopcast/services/projection-service/internal/rankings"
	"github.com/courtside/hoopcast/services/projection-service/pkg/models"
)

func seasonLine(games, ppg, rpg, apg float64) models.SeasonLine {
	return models.SeasonLine{
		Games:    games,
		Points:   games * ppg,
		Rebounds: games * rpg,
		Assists:  games * apg,
	}
}

func TestRankOrdersByFantasyPPG(t *testing.T) {
	p := projector.NewDefault()

	players := []rankings.PlayerInput{
		{
			Player: "Role Player",
			Series: models.CareerSeries{seasonLine(80, 8, 3, 2)},
		},
		{
			Player: "Star",
			Series: models.CareerSeries{seasonLine(80, 30, 8, 7)},
		},
		{
			Player: "Starter",
			Series: models.CareerSeries{seasonLine(80, 18, 6, 4)},
		},
	}

	board := rankings.Rank(p, players)

	if len(board) != 3 {
		t.Fatalf("got %d ranked players, want 3", len(board))
	}

	wantOrder := []string{"Star", "Starter", "Role Player"}
	for i, want := range wantOrder {
		if board[i].Player != want {
			t.Errorf("rank %d = %s, want %s", i+1, board[i].Player, want)
		}
		if board[i].Rank != i+1 {
			t.Errorf("rank number = %d, want %d", board[i].Rank, i+1)
		}
	}

	if board[0].FantasyPPG <= board[1].FantasyPPG {
		t.Errorf("board not descending: %f <= %f", board[0].FantasyPPG, board[1].FantasyPPG)
	}
}

func TestRankDropsUnprojectablePlayers(t *testing.T) {
	p := projector.NewDefault()

	players := []rankings.PlayerInput{
		{Player: "No History"}, // empty career series
		{Player: "Veteran", Series: models.CareerSeries{seasonLine(80, 20, 6, 4)}},
	}

	board := rankings.Rank(p, players)

	if len(board) != 1 {
		t.Fatalf("got %d ranked players, want 1", len(board))
	}
	if board[0].Player != "Veteran" || board[0].Rank != 1 {
		t.Errorf("board[0] = %+v, want Veteran at rank 1", board[0])
	}
}

func TestRankCarriesTrend(t *testing.T) {
	p := projector.NewDefault()

	window := models.RecentWindow{
		{Points: 30}, {Points: 30}, {Points: 30},
		{Points: 10}, {Points: 10}, {Points: 10},
	}

	players := []rankings.PlayerInput{
		{
			Player: "Heating Up",
			Window: window,
			Series: models.CareerSeries{seasonLine(80, 20, 6, 4)},
		},
	}

	board := rankings.Rank(p, players)
	if len(board) != 1 {
		t.Fatalf("got %d ranked players, want 1", len(board))
	}
	if board[0].Trend != models.TrendUp {
		t.Errorf("Trend = %s, want %s", board[0].Trend, models.TrendUp)
	}
}
