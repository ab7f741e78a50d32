package main

import (
	"fmt"

	"github.com/lox/matchsticks/internal/config"
	"github.com/lox/matchsticks/internal/game"
	"github.com/lox/matchsticks/internal/minimax"
)

// TableCmd prints the minimax value for every count up to a limit,
// next to the mod-4 display heuristic. The two must agree everywhere
// for this rule set; any disagreement is flagged loudly because it
// means the evaluator (or the rules) changed.
type TableCmd struct {
	Max int `short:"n" help:"Largest stick count to evaluate" default:"50"`
}

// Run prints the reference table.
func (cmd *TableCmd) Run() error {
	if cmd.Max < 1 || cmd.Max > config.MaxStartingSticks {
		return fmt.Errorf("max must be between 1 and %d, got %d", config.MaxStartingSticks, cmd.Max)
	}

	ev := minimax.NewEvaluator()
	ev.Reset() // fresh run, nothing carried over

	fmt.Printf("%6s  %8s  %6s  %6s  %s\n", "sticks", "value", "move", "hint", "")
	disagreements := 0
	for count := 1; count <= cmd.Max; count++ {
		value := ev.Evaluate(count, true)
		move, _ := ev.SelectMove(count)
		hint := game.Heuristic(count)

		note := ""
		if value != hint {
			note = "DISAGREES with mod-4 rule"
			disagreements++
		}
		fmt.Printf("%6d  %+8d  %6d  %+6d  %s\n", count, value, move, hint, note)
	}

	if disagreements > 0 {
		return fmt.Errorf("%d counts disagree with the mod-4 rule", disagreements)
	}
	fmt.Printf("\nAll %d counts agree with the mod-4 rule (%d positions memoized).\n", cmd.Max, ev.CacheSize())
	return nil
}
