package statistics

import (
	"math"
	"strings"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := New()

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdDev() != 0 {
		t.Errorf("Expected stddev of 0 for empty stats, got %f", stats.StdDev())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.FirstMoverWinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.FirstMoverWinRate())
	}
}

func TestStatistics_SingleGame(t *testing.T) {
	stats := New()
	stats.Add(GameResult{
		StartingSticks: 15,
		FirstMoverWon:  true,
		Moves:          7,
		Takes:          []int{3, 1, 3, 2, 2, 3, 1},
		Seed:           12345,
	}, true)

	if stats.Games != 1 {
		t.Errorf("Expected 1 game, got %d", stats.Games)
	}
	if stats.Mean() != 7 {
		t.Errorf("Expected mean of 7, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Median() != 7 {
		t.Errorf("Expected median of 7, got %f", stats.Median())
	}
	if stats.FirstMoverWins != 1 {
		t.Errorf("Expected 1 first-mover win, got %d", stats.FirstMoverWins)
	}
	// 15 is not a multiple of 4, so a perfect-play first-mover win
	// agrees with theory.
	if stats.TheoryAgreement != 1 {
		t.Errorf("Expected theory agreement of 1, got %d", stats.TheoryAgreement)
	}
	if stats.TakeCounts[3] != 3 {
		t.Errorf("Expected 3 takes of size 3, got %d", stats.TakeCounts[3])
	}
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := New()
	for i, moves := range []int{5, 7, 9} {
		stats.Add(GameResult{
			StartingSticks: 16,
			FirstMoverWon:  i == 0,
			Moves:          moves,
		}, false)
	}

	if stats.Mean() != 7 {
		t.Errorf("Expected mean of 7, got %f", stats.Mean())
	}
	if stats.Median() != 7 {
		t.Errorf("Expected median of 7, got %f", stats.Median())
	}
	if math.Abs(stats.Variance()-4.0) > 1e-9 {
		t.Errorf("Expected variance of 4, got %f", stats.Variance())
	}
	if math.Abs(stats.FirstMoverWinRate()-1.0/3.0) > 1e-9 {
		t.Errorf("Expected win rate 1/3, got %f", stats.FirstMoverWinRate())
	}
	// Not perfect play, no theory samples recorded.
	if stats.TheoryGames != 0 {
		t.Errorf("Expected 0 theory games, got %d", stats.TheoryGames)
	}
}

func TestStatistics_TheoryDisagreement(t *testing.T) {
	stats := New()

	// Perfect play from a multiple of 4 should be a first-mover loss;
	// a recorded win disagrees with theory.
	stats.Add(GameResult{StartingSticks: 16, FirstMoverWon: true, Moves: 6}, true)

	if stats.TheoryGames != 1 || stats.TheoryAgreement != 0 {
		t.Errorf("Expected 1 theory game with 0 agreement, got %d/%d", stats.TheoryAgreement, stats.TheoryGames)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a := New()
	a.Add(GameResult{StartingSticks: 15, FirstMoverWon: true, Moves: 7, Takes: []int{3, 1, 3}}, true)

	b := New()
	b.Add(GameResult{StartingSticks: 16, FirstMoverWon: false, Moves: 8, Takes: []int{1, 2}}, true)

	a.Merge(b)

	if a.Games != 2 {
		t.Errorf("Expected 2 games after merge, got %d", a.Games)
	}
	if a.FirstMoverWins != 1 {
		t.Errorf("Expected 1 first-mover win after merge, got %d", a.FirstMoverWins)
	}
	if a.TheoryAgreement != 2 {
		t.Errorf("Expected 2 theory agreements after merge, got %d", a.TheoryAgreement)
	}
	if a.Mean() != 7.5 {
		t.Errorf("Expected mean 7.5 after merge, got %f", a.Mean())
	}
}

func TestStatistics_Report(t *testing.T) {
	stats := New()
	stats.Add(GameResult{StartingSticks: 15, FirstMoverWon: true, Moves: 7, Takes: []int{3, 1, 3}}, true)

	report := stats.Report()
	for _, want := range []string{"Games:", "First mover wins:", "Take distribution:", "Theory agreement:", "15 sticks:"} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}
}
