package game

import "testing"

func TestNewGame(t *testing.T) {
	g := NewGame(15, Human)

	if g.Sticks != 15 {
		t.Errorf("Expected 15 sticks, got %d", g.Sticks)
	}
	if g.Phase != HumanToMove {
		t.Errorf("Expected HumanToMove, got %v", g.Phase)
	}
	if g.Over() {
		t.Error("New game should not be over")
	}
	if g.StartingSticks() != 15 {
		t.Errorf("Expected starting sticks 15, got %d", g.StartingSticks())
	}
}

func TestNewGame_AIFirst(t *testing.T) {
	g := NewGame(10, AI)

	if g.Phase != AIToMove {
		t.Errorf("Expected AIToMove, got %v", g.Phase)
	}
	if g.Turn() != AI {
		t.Errorf("Expected AI to move, got %v", g.Turn())
	}
}

func TestNewGame_ZeroSticksPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGame(0, Human) did not panic")
		}
	}()
	NewGame(0, Human)
}

func TestApply_FlipsTurn(t *testing.T) {
	g := NewGame(10, Human)

	if err := g.Apply(2); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if g.Sticks != 8 {
		t.Errorf("Expected 8 sticks, got %d", g.Sticks)
	}
	if g.Turn() != AI {
		t.Errorf("Expected AI to move after human move, got %v", g.Turn())
	}

	if err := g.Apply(3); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if g.Turn() != Human {
		t.Errorf("Expected Human to move after AI move, got %v", g.Turn())
	}
}

func TestApply_IllegalMoves(t *testing.T) {
	g := NewGame(2, Human)

	for _, move := range []Move{0, -1, 4, 3} {
		if err := g.Apply(move); err == nil {
			t.Errorf("Apply(%d) with 2 sticks should fail", move)
		}
	}

	// State untouched by rejected moves.
	if g.Sticks != 2 || g.Turn() != Human {
		t.Errorf("Rejected moves changed state: %d sticks, %v to move", g.Sticks, g.Turn())
	}
}

func TestApply_LastStickLoses(t *testing.T) {
	g := NewGame(3, Human)

	if err := g.Apply(3); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !g.Over() {
		t.Fatal("Game should be over after last stick taken")
	}
	if g.Loser != Human {
		t.Errorf("Expected Human to lose (took last stick), got %v", g.Loser)
	}
	if g.Winner() != AI {
		t.Errorf("Expected AI to win, got %v", g.Winner())
	}
}

func TestApply_AfterGameOver(t *testing.T) {
	g := NewGame(1, AI)

	if err := g.Apply(1); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := g.Apply(1); err == nil {
		t.Error("Apply on a finished game should fail")
	}
}

func TestView_Snapshot(t *testing.T) {
	g := NewGame(12, Human)
	if err := g.Apply(1); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	view := g.View()
	if view.Sticks != 11 {
		t.Errorf("Expected view of 11 sticks, got %d", view.Sticks)
	}
	if len(view.Moves) != 1 {
		t.Fatalf("Expected 1 recorded move, got %d", len(view.Moves))
	}
	if view.Hint != Heuristic(11) {
		t.Errorf("Expected hint %d, got %d", Heuristic(11), view.Hint)
	}

	// Mutating the snapshot must not touch the game record.
	view.Moves[0].Take = 99
	if g.History.Moves()[0].Take == 99 {
		t.Error("View shares backing storage with game history")
	}
}

func TestValidMoves(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{50, 3},
	}

	for _, c := range cases {
		got := ValidMoves(c.count)
		if len(got) != c.want {
			t.Errorf("ValidMoves(%d) has %d moves, want %d", c.count, len(got), c.want)
		}
		for _, m := range got {
			if !m.IsLegal(c.count) {
				t.Errorf("ValidMoves(%d) includes illegal move %d", c.count, m)
			}
		}
	}
}

func TestHeuristic_ModFour(t *testing.T) {
	for count := 0; count <= 12; count++ {
		got := Heuristic(count)
		if count%4 == 0 && got != -1 {
			t.Errorf("Heuristic(%d) = %d, want -1", count, got)
		}
		if count%4 != 0 && got != 1 {
			t.Errorf("Heuristic(%d) = %d, want 1", count, got)
		}
	}
}
