package minimax

import "fmt"

// Game-theoretic position values. The value range is only these two
// outcomes: with a finite move set and no draws, every position is
// either won or lost with best play.
const (
	Win  = 1
	Loss = -1
)

// MaxTake is the largest number of sticks a player may take per turn.
// The legal move set is 1..MaxTake, capped by the remaining count.
const MaxTake = 3

// Evaluator scores positions of the matchstick game by exhaustive
// game-tree search with memoization. The convention is misère play:
// whoever takes the last stick loses.
type Evaluator struct {
	cache *Cache
}

// NewEvaluator creates an evaluator with a fresh cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{cache: NewCache()}
}

// Reset clears the memoization cache. Called at game boundaries and
// before generating reference tables.
func (e *Evaluator) Reset() {
	e.cache.Clear()
}

// CacheSize reports how many positions are currently memoized.
func (e *Evaluator) CacheSize() int {
	return e.cache.Len()
}

// Evaluate returns the value of a position from the maximizing player's
// perspective: Win if the player to move wins with best play when
// maximizing is true, mirrored when false. count must be non-negative;
// legality is the caller's contract and violations panic rather than
// clamp, so integration bugs surface immediately.
func (e *Evaluator) Evaluate(count int, maximizing bool) int {
	if count < 0 {
		panic(fmt.Sprintf("minimax: negative stick count %d", count))
	}

	if score, ok := e.cache.Get(count, maximizing); ok {
		return score
	}

	score := e.search(count, maximizing)
	e.cache.Put(count, maximizing, score)
	return score
}

func (e *Evaluator) search(count int, maximizing bool) int {
	if count == 0 {
		// The previous mover took the last stick and lost. A mover
		// facing zero sticks has therefore been handed the win, which
		// scores Loss for the maximizer only when the maximizer is the
		// one who just moved, i.e. when maximizing is true here.
		if maximizing {
			return Loss
		}
		return Win
	}

	if maximizing {
		best := Loss
		for take := 1; take <= MaxTake && take <= count; take++ {
			if v := e.Evaluate(count-take, false); v > best {
				best = v
			}
			if best == Win {
				break // nothing beats a won line
			}
		}
		return best
	}

	best := Win
	for take := 1; take <= MaxTake && take <= count; take++ {
		if v := e.Evaluate(count-take, true); v < best {
			best = v
		}
		if best == Loss {
			break
		}
	}
	return best
}

// SelectMove returns the best number of sticks to take from count, and
// the value the mover achieves with it. Moves are scanned ascending and
// ties keep the lowest take, so a lost position still yields a stable,
// structurally valid move. count must be positive: a finished game has
// no move to select, and asking for one is a caller bug.
func (e *Evaluator) SelectMove(count int) (move, score int) {
	if count <= 0 {
		panic(fmt.Sprintf("minimax: no move to select from count %d", count))
	}

	move = 0
	score = Loss - 1 // below the value range, any real score beats it
	for take := 1; take <= MaxTake && take <= count; take++ {
		if v := e.Evaluate(count-take, false); v > score {
			move, score = take, v
		}
	}
	return move, score
}
