package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/matchsticks/internal/ai"
	"github.com/lox/matchsticks/internal/config"
	"github.com/lox/matchsticks/internal/game"
)

// Session wires the game engine to the TUI: the engine runs on its own
// goroutine and all interaction crosses via program messages, so the
// model stays a plain event consumer.
type Session struct {
	cfg     *config.Config
	logger  *log.Logger
	program *tea.Program
	ai      *ai.Engine
}

// NewSession creates an interactive session from configuration.
func NewSession(cfg *config.Config, logger *log.Logger) *Session {
	return &Session{
		cfg:    cfg,
		logger: logger,
		ai: ai.NewEngine(logger,
			ai.WithDelay(time.Duration(cfg.Game.AIDelayMs)*time.Millisecond)),
	}
}

// Run starts the TUI and plays games until the human quits.
func (s *Session) Run() error {
	model := NewModel(s.logger, s.cfg.Game.PlayerName)
	s.program = tea.NewProgram(model, tea.WithAltScreen())

	go s.gameLoop()

	_, err := s.program.Run()
	return err
}

// eventForwarder relays engine events into the program as messages.
type eventForwarder struct {
	program *tea.Program
}

func (f eventForwarder) HandleEvent(event game.GameEvent) {
	f.program.Send(eventMsg{event: event})
}

func (s *Session) gameLoop() {
	human := game.NewHumanAgent(s.promptHuman)
	agents := map[game.PlayerType]game.Agent{
		game.Human: human,
		game.AI:    s.ai,
	}

	for {
		first := game.Human
		if !s.cfg.Game.HumanFirst {
			first = game.AI
		}

		s.ai.NewGame()
		g := game.NewGame(s.cfg.Game.StartingSticks, first)
		engine := game.NewEngine(g, agents, s.logger)
		engine.EventBus().Subscribe(eventForwarder{s.program})

		result, err := engine.PlayGame()
		if err != nil {
			s.program.Send(errMsg{err: err})
			return
		}

		resp := make(chan bool, 1)
		s.program.Send(gameOverMsg{result: result, resp: resp})
		if again := <-resp; !again {
			return
		}
	}
}

// promptHuman blocks the engine goroutine until the model collects a
// move. A closed response channel means the UI is going away; the
// zero decision propagates as an error and the human agent falls back,
// which is fine because the program is already quitting.
func (s *Session) promptHuman(view game.View, valid []game.Move) (game.Decision, error) {
	resp := make(chan game.Decision, 1)
	s.program.Send(promptMsg{view: view, valid: valid, resp: resp})

	decision, ok := <-resp
	if !ok {
		return game.Decision{}, errors.New("interface closed")
	}
	return decision, nil
}
