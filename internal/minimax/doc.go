// Package minimax implements the game-tree evaluator for the matchstick game.
//
// The main type is Evaluator, which maps a position (remaining stick count
// plus whose perspective we are scoring) to a game-theoretic value of -1
// (lost with best play) or +1 (won with best play), and recommends moves.
//
// # Basic Usage
//
// Create an evaluator and ask for the best move:
//
//	ev := minimax.NewEvaluator()
//	move, score := ev.SelectMove(15)
//	// move == 3, score == minimax.Win
//
// Score an arbitrary position from the mover's perspective:
//
//	score := ev.Evaluate(16, true) // minimax.Loss
//
// # Architecture
//
// Evaluation is a full-depth recursive search over the tiny state space
// (at most 3 moves per position, depth bounded by the starting count).
// Results are memoized in a Cache keyed by (count, maximizing). The cache
// is a pure memoization layer: entries never go stale for a fixed rule
// set, but Clear is exposed so callers can start fresh runs (a new game,
// a bulk reference table) without observing prior state. The Cache is
// mutex-guarded so evaluators can be shared across goroutines.
package minimax
