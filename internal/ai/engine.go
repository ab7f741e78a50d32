// Package ai provides the computer opponent: a game.Agent backed by the
// minimax evaluator, with an injectable clock so the interactive game
// can pace its moves like a thinking opponent.
package ai

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/matchsticks/internal/game"
	"github.com/lox/matchsticks/internal/minimax"
)

// Engine is the computer opponent. It selects moves with a full-depth
// minimax search and annotates each decision with whether the achieved
// line is winning and whether it agrees with the mod-4 hint.
type Engine struct {
	evaluator *minimax.Evaluator
	logger    *log.Logger
	clock     quartz.Clock
	delay     time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelay makes the engine pause before answering, so the TUI reads
// like an opponent taking a moment to think.
func WithDelay(delay time.Duration) Option {
	return func(e *Engine) {
		if delay > 0 {
			e.delay = delay
		}
	}
}

// WithClock injects a clock; tests use quartz.NewMock.
func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// NewEngine creates the computer opponent.
func NewEngine(logger *log.Logger, options ...Option) *Engine {
	e := &Engine{
		evaluator: minimax.NewEvaluator(),
		logger:    logger.WithPrefix("ai"),
		clock:     quartz.NewReal(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Evaluator exposes the underlying evaluator for analysis commands.
func (e *Engine) Evaluator() *minimax.Evaluator {
	return e.evaluator
}

// NewGame resets the evaluation cache. Values are invariant across
// games for the fixed rule set; clearing keeps runs independent anyway.
func (e *Engine) NewGame() {
	e.evaluator.Reset()
}

// MakeDecision picks the minimax move for the current position.
func (e *Engine) MakeDecision(view game.View, valid []game.Move) game.Decision {
	if e.delay > 0 {
		timer := e.clock.NewTimer(e.delay)
		defer timer.Stop()
		<-timer.C
	}

	move, score := e.evaluator.SelectMove(view.Sticks)

	reasoning := e.describe(move, score, view)
	e.logger.Debug("Selected move", "sticks", view.Sticks, "take", move, "score", score)

	return game.Decision{Move: game.Move(move), Reasoning: reasoning}
}

func (e *Engine) describe(move, score int, view game.View) string {
	verdict := "a lost position, taking the minimum"
	if score == minimax.Win {
		verdict = fmt.Sprintf("a winning line, leaving %d", view.Sticks-move)
	}

	if view.Hint != score {
		// Cannot happen with the fixed rule set; worth shouting if the
		// rules ever drift apart from the display heuristic.
		e.logger.Warn("Search disagrees with mod-4 hint", "sticks", view.Sticks, "search", score, "hint", view.Hint)
		return fmt.Sprintf("search says %+d, hint says %+d", score, view.Hint)
	}

	return verdict
}
