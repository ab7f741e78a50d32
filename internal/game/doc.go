// Package game implements the matchstick game: state, turn sequencing,
// move legality, history, and the agent interface the engine drives.
//
// The main type is Engine, which owns the game state and runs the turn
// loop for a single game between two agents (typically a human at the
// TUI and the minimax opponent).
//
// # Basic Usage
//
// Create and run a game:
//
//	g := game.NewGame(15, game.Human)
//	engine := game.NewEngine(g, agents, logger)
//	result, err := engine.PlayGame()
//
// Agents never mutate state. They receive an immutable View together
// with the legal moves and return a Decision; the engine validates the
// decision, applies it, and publishes events for observers such as the
// TUI and the history transcript.
package game
