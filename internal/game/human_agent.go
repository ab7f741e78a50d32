package game

import "fmt"

// HumanAgent represents a human player interacting through a user
// interface. The UI supplies a prompt function that blocks until the
// human submits a move.
type HumanAgent struct {
	promptFunc func(view View, valid []Move) (Decision, error)
}

// NewHumanAgent creates a human agent with a prompt function.
func NewHumanAgent(promptFunc func(view View, valid []Move) (Decision, error)) *HumanAgent {
	return &HumanAgent{promptFunc: promptFunc}
}

// MakeDecision prompts the human for a move. If the prompt fails the
// lowest valid move is returned so the game can still make progress.
func (h *HumanAgent) MakeDecision(view View, valid []Move) Decision {
	if h.promptFunc == nil {
		return Decision{
			Move:      valid[0],
			Reasoning: "no user interface available",
		}
	}

	decision, err := h.promptFunc(view, valid)
	if err != nil {
		return Decision{
			Move:      valid[0],
			Reasoning: fmt.Sprintf("input error: %v", err),
		}
	}
	return decision
}
