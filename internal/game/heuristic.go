package game

import "github.com/lox/matchsticks/internal/minimax"

// Heuristic is the naive mod-4 rule: a count that is a multiple of 4 is
// lost for the mover, anything else is won. For the fixed take set
// {1,2,3} under last-stick-loses rules this happens to agree with the
// full minimax search at every count. The agreement is an artifact of
// these exact rules and would not survive a different take set or
// convention, so nothing selects moves with it; it exists for display
// and for cross-checking the evaluator in tests and the reference
// table.
func Heuristic(count int) int {
	if count%4 == 0 {
		return minimax.Loss
	}
	return minimax.Win
}
