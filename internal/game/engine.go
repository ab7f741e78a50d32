package game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/matchsticks/internal/gameid"
)

// Engine runs the turn loop for a single game between two agents. It is
// the only component that mutates game state: agents just decide.
type Engine struct {
	id       string
	game     *Game
	agents   map[PlayerType]Agent
	logger   *log.Logger
	eventBus EventBus
}

// NewEngine creates an engine for a game with an agent per seat. Both
// seats must have an agent.
func NewEngine(game *Game, agents map[PlayerType]Agent, logger *log.Logger) *Engine {
	if agents[Human] == nil || agents[AI] == nil {
		panic("game: engine requires an agent for both seats")
	}

	return &Engine{
		id:       gameid.Generate(),
		game:     game,
		agents:   agents,
		logger:   logger,
		eventBus: NewEventBus(),
	}
}

// ID returns the unique identifier assigned to this game.
func (e *Engine) ID() string {
	return e.id
}

// EventBus returns the bus for subscribing to game events.
func (e *Engine) EventBus() EventBus {
	return e.eventBus
}

// Game returns the underlying game state.
func (e *Engine) Game() *Game {
	return e.game
}

// Result contains the outcome of a completed game.
type Result struct {
	GameID     string
	Winner     PlayerType
	Loser      PlayerType
	TotalMoves int
	Transcript string
}

// PlayGame runs the game to completion and returns the result.
func (e *Engine) PlayGame() (*Result, error) {
	e.logger.Debug("Starting game", "game_id", e.id, "sticks", e.game.Sticks, "first", e.game.Turn())
	e.eventBus.Publish(NewGameStartEvent(e.game.Sticks, e.game.Turn()))

	for !e.game.Over() {
		if err := e.PlayTurn(); err != nil {
			return nil, err
		}
	}

	result := &Result{
		GameID:     e.id,
		Winner:     e.game.Winner(),
		Loser:      e.game.Loser,
		TotalMoves: e.game.History.Len(),
		Transcript: e.game.History.Transcript(),
	}

	e.logger.Debug("Game complete", "game_id", e.id, "winner", result.Winner, "moves", result.TotalMoves)
	e.eventBus.Publish(NewGameEndEvent(result.Winner, result.TotalMoves, result.Transcript))
	return result, nil
}

// PlayTurn runs a single turn: asks the agent on move for a decision,
// validates it, and applies it. An agent returning an illegal move is
// logged and falls back to the lowest valid move so one bad decision
// cannot wedge the game.
func (e *Engine) PlayTurn() error {
	if e.game.Over() {
		return errors.New("game is over")
	}

	mover := e.game.Turn()
	valid := ValidMoves(e.game.Sticks)
	if len(valid) == 0 {
		// Unreachable while Sticks > 0; a zero count is always GameOver.
		return fmt.Errorf("no valid moves with %d sticks", e.game.Sticks)
	}

	decision := e.agents[mover].MakeDecision(e.game.View(), valid)

	if err := e.game.Apply(decision.Move); err != nil {
		e.logger.Error("Failed to apply agent decision", "error", err, "player", mover, "move", decision.Move)
		fallback := Decision{
			Move:      valid[0],
			Reasoning: "fallback due to invalid decision",
		}
		if err := e.game.Apply(fallback.Move); err != nil {
			return fmt.Errorf("fallback move also failed: %w", err)
		}
		decision = fallback
	}

	e.logger.Debug("Move played",
		"player", mover,
		"take", decision.Move,
		"remaining", e.game.Sticks,
		"reasoning", decision.Reasoning)

	e.eventBus.Publish(NewMovePlayedEvent(mover, decision.Move, e.game.Sticks, decision.Reasoning))
	return nil
}
