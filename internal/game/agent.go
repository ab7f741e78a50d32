package game

// Decision represents a player's chosen move with reasoning
type Decision struct {
	Move      Move
	Reasoning string // Human-readable explanation for the game log
}

// Agent represents any entity (human or AI) that can choose moves.
// Agents receive immutable game state and return decisions - no state
// mutation allowed; the engine applies the decision.
type Agent interface {
	// MakeDecision analyzes the view and picks one of the valid moves.
	MakeDecision(view View, valid []Move) Decision
}
