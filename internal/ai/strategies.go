package ai

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/matchsticks/internal/game"
	"github.com/lox/matchsticks/internal/randutil"
)

// RandomAgent plays a uniformly random legal move. Used as a simulation
// opponent and a baseline.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates a random agent with its own seeded RNG.
func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{rng: randutil.New(seed)}
}

// MakeDecision picks any legal move.
func (a *RandomAgent) MakeDecision(view game.View, valid []game.Move) game.Decision {
	move := valid[a.rng.IntN(len(valid))]
	return game.Decision{Move: move, Reasoning: "random"}
}

// HeuristicAgent plays the mod-4 strategy directly, with no search:
// take count mod 4 when that is a legal move, otherwise the minimum.
// Against the fixed rule set this is as strong as the full search; it
// exists so simulations can confirm the two never diverge in outcome.
type HeuristicAgent struct{}

// NewHeuristicAgent creates a heuristic agent.
func NewHeuristicAgent() *HeuristicAgent {
	return &HeuristicAgent{}
}

// MakeDecision reduces the pile to a multiple of 4 when possible.
func (a *HeuristicAgent) MakeDecision(view game.View, valid []game.Move) game.Decision {
	if take := view.Sticks % 4; take >= 1 && take <= 3 {
		move := game.Move(take)
		if move.IsLegal(view.Sticks) {
			return game.Decision{
				Move:      move,
				Reasoning: fmt.Sprintf("mod-4 rule, leaving %d", view.Sticks-take),
			}
		}
	}
	return game.Decision{Move: valid[0], Reasoning: "mod-4 rule, lost position"}
}
