package game

import "fmt"

// PlayerType distinguishes the human seat from the computer seat.
type PlayerType int

const (
	Human PlayerType = iota
	AI
)

// String returns the display name of the player type.
func (pt PlayerType) String() string {
	switch pt {
	case Human:
		return "You"
	case AI:
		return "Computer"
	default:
		return "Unknown"
	}
}

// Other returns the opposing seat.
func (pt PlayerType) Other() PlayerType {
	if pt == Human {
		return AI
	}
	return Human
}

// Phase is the turn-taking state machine. The engine moves through
// HumanToMove and AIToMove until a move empties the pile, which enters
// GameOver; whoever took the last stick loses.
type Phase int

const (
	HumanToMove Phase = iota
	AIToMove
	GameOver
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case HumanToMove:
		return "human to move"
	case AIToMove:
		return "computer to move"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game holds the mutable state of a single matchstick game.
type Game struct {
	Sticks  int
	Phase   Phase
	History *History

	// Loser is set when the game is over: the player who took the
	// last stick.
	Loser PlayerType

	startingSticks int
}

// NewGame creates a game with count sticks on the table and the given
// side to move first. count must be positive.
func NewGame(count int, first PlayerType) *Game {
	if count <= 0 {
		panic(fmt.Sprintf("game: starting stick count %d must be positive", count))
	}

	phase := HumanToMove
	if first == AI {
		phase = AIToMove
	}

	return &Game{
		Sticks:         count,
		Phase:          phase,
		History:        NewHistory(count),
		startingSticks: count,
	}
}

// StartingSticks returns the stick count the game began with.
func (g *Game) StartingSticks() int {
	return g.startingSticks
}

// Turn returns the side to move. Calling Turn on a finished game is a
// caller bug.
func (g *Game) Turn() PlayerType {
	switch g.Phase {
	case HumanToMove:
		return Human
	case AIToMove:
		return AI
	default:
		panic("game: no side to move, game is over")
	}
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.Phase == GameOver
}

// Winner returns the winning side of a finished game.
func (g *Game) Winner() PlayerType {
	if !g.Over() {
		panic("game: winner requested before game over")
	}
	return g.Loser.Other()
}

// Apply plays a move for the side to move: decrements the pile, records
// history, and flips the turn. Taking the last stick ends the game and
// marks the mover as the loser. Returns an error for illegal moves so
// the engine can reject bad agent decisions without dying.
func (g *Game) Apply(move Move) error {
	if g.Over() {
		return fmt.Errorf("game is over, no moves allowed")
	}
	if !move.IsLegal(g.Sticks) {
		return fmt.Errorf("illegal move: take %d with %d sticks remaining", move, g.Sticks)
	}

	mover := g.Turn()
	g.Sticks -= int(move)
	g.History.Record(mover, move, g.Sticks)

	if g.Sticks == 0 {
		g.Phase = GameOver
		g.Loser = mover
		return nil
	}

	if mover == Human {
		g.Phase = AIToMove
	} else {
		g.Phase = HumanToMove
	}
	return nil
}

// View returns an immutable snapshot for agents and displays.
func (g *Game) View() View {
	return View{
		Sticks:         g.Sticks,
		Phase:          g.Phase,
		StartingSticks: g.startingSticks,
		Moves:          g.History.Moves(),
		Hint:           Heuristic(g.Sticks),
	}
}

// View is the read-only game state handed to agents. Agents make
// decisions from it; only the engine mutates the Game.
type View struct {
	Sticks         int
	Phase          Phase
	StartingSticks int
	Moves          []Entry

	// Hint is the mod-4 display heuristic for the current count. It is
	// informational only; see Heuristic.
	Hint int
}
