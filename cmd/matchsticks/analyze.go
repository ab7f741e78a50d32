package main

import (
	"fmt"

	"github.com/lox/matchsticks/internal/game"
	"github.com/lox/matchsticks/internal/minimax"
)

// AnalyzeCmd evaluates a single position from both perspectives and
// recommends a move.
type AnalyzeCmd struct {
	Sticks int `arg:"" help:"Remaining stick count to analyze"`
}

// Run prints the analysis.
func (cmd *AnalyzeCmd) Run() error {
	if cmd.Sticks < 0 {
		return fmt.Errorf("stick count must not be negative, got %d", cmd.Sticks)
	}

	ev := minimax.NewEvaluator()

	maxView := ev.Evaluate(cmd.Sticks, true)
	minView := ev.Evaluate(cmd.Sticks, false)
	fmt.Printf("Position: %d sticks, last stick loses\n", cmd.Sticks)
	fmt.Printf("Value for the mover:     %+d\n", maxView)
	fmt.Printf("Value for the opponent:  %+d\n", minView)
	fmt.Printf("Mod-4 hint:              %+d\n", game.Heuristic(cmd.Sticks))

	if cmd.Sticks == 0 {
		fmt.Println("Game over: the previous mover took the last stick and lost.")
		return nil
	}

	move, score := ev.SelectMove(cmd.Sticks)
	if score == minimax.Win {
		fmt.Printf("Best move: take %d, leaving %d (winning)\n", move, cmd.Sticks-move)
	} else {
		fmt.Printf("Best move: take %d (every move loses with best play)\n", move)
	}
	return nil
}
