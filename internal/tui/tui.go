// Package tui implements the interactive terminal game with Bubble Tea.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/matchsticks/internal/game"
	"github.com/lox/matchsticks/internal/minimax"
)

// Messages sent into the model by the game session goroutine.

// promptMsg asks the model to collect a move from the human.
type promptMsg struct {
	view  game.View
	valid []game.Move
	resp  chan game.Decision
}

// eventMsg forwards a game event into the display.
type eventMsg struct {
	event game.GameEvent
}

// gameOverMsg reports the final result and asks about another game.
type gameOverMsg struct {
	result *game.Result
	resp   chan bool
}

// errMsg reports a fatal session error.
type errMsg struct {
	err error
}

// Model represents the Bubble Tea model for the matchstick game
type Model struct {
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	moveInput   textinput.Model

	// Display state, fed entirely by events
	gameLog    []string
	sticks     int
	starting   int
	turn       string
	hint       int
	playerName string

	// Pending interactions with the session goroutine
	prompt    *promptMsg
	playAgain *gameOverMsg

	// Dimensions
	width  int
	height int

	quitting bool
	err      error
}

// NewModel creates a TUI model. All game state arrives via messages
// from the session, the model never touches the engine directly.
func NewModel(logger *log.Logger, playerName string) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Take 1, 2 or 3 sticks"
	ti.Focus()
	ti.CharLimit = 10
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		moveInput:   ti,
		gameLog:     []string{},
		playerName:  playerName,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()

	case promptMsg:
		m.prompt = &msg
		m.sticks = msg.view.Sticks
		m.starting = msg.view.StartingSticks
		m.hint = msg.view.Hint
		m.turn = m.playerName
		m.moveInput.Focus()

	case gameOverMsg:
		m.playAgain = &msg
		m.appendLog(msg.result.Transcript)
		m.appendLog(InfoStyle.Render("Play again? (y/n)"))

	case eventMsg:
		m.handleGameEvent(msg.event)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.quit()
		case "enter":
			m.submitInput()
		default:
			// y/n answers outside a move prompt
			if m.prompt == nil && m.playAgain != nil {
				switch msg.String() {
				case "y", "Y":
					m.answerContinue(true)
					return m, nil
				case "n", "N", "q":
					m.answerContinue(false)
					return m.quit()
				}
			}
		}
	}

	var cmd tea.Cmd
	m.moveInput, cmd = m.moveInput.Update(msg)
	cmds = append(cmds, cmd)

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.prompt != nil {
		close(m.prompt.resp)
		m.prompt = nil
	}
	if m.playAgain != nil {
		m.answerContinue(false)
	}
	return m, tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) answerContinue(again bool) {
	if m.playAgain == nil {
		return
	}
	m.playAgain.resp <- again
	m.playAgain = nil
	if again {
		m.gameLog = nil
		m.logViewport.SetContent("")
	}
}

// submitInput parses the text input as a move and answers the pending
// prompt. Outside a prompt the input is ignored.
func (m *Model) submitInput() {
	text := strings.TrimSpace(m.moveInput.Value())
	m.moveInput.SetValue("")

	if m.prompt == nil {
		return
	}

	move, err := ParseMove(text, m.prompt.valid)
	if err != nil {
		m.appendLog(ErrorStyle.Render(err.Error()))
		return
	}

	m.prompt.resp <- game.Decision{Move: move, Reasoning: "human move"}
	m.prompt = nil
	m.turn = "Computer"
}

// ParseMove interprets human input as a stick take: a bare number or
// "take N". The move must be one of the valid moves.
func ParseMove(text string, valid []game.Move) (game.Move, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.TrimPrefix(text, "take ")

	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("don't understand %q, enter a number of sticks", text)
	}

	for _, v := range valid {
		if game.Move(n) == v {
			return v, nil
		}
	}
	return 0, fmt.Errorf("can't take %d sticks right now", n)
}

func (m *Model) handleGameEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.GameStartEvent:
		m.sticks = e.Sticks
		m.starting = e.Sticks
		m.turn = e.First.String()
		m.appendLog(HeaderStyle.Render(fmt.Sprintf(" New game: %d sticks, last stick loses ", e.Sticks)))

	case game.MovePlayedEvent:
		m.sticks = e.Remaining
		m.hint = e.Hint
		who := m.playerName
		if e.Mover == game.AI {
			who = "Computer"
			m.turn = m.playerName
		} else {
			m.turn = "Computer"
		}
		line := fmt.Sprintf("%s took %d, %d left", who, e.Take, e.Remaining)
		if e.Mover == game.AI && e.Reasoning != "" {
			line += InfoStyle.Render(fmt.Sprintf("  (%s)", e.Reasoning))
		}
		m.appendLog(line)

	case game.GameEndEvent:
		if e.Winner == game.Human {
			m.appendLog(WinningStyle.Render("You win!"))
		} else {
			m.appendLog(LosingStyle.Render("Computer wins."))
		}
	}
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.logViewport.SetContent(GameLogStyle.Render(strings.Join(m.gameLog, "\n")))
	m.logViewport.GotoBottom()
}

func (m *Model) resizeViewport() {
	w := m.width - sidebarWidth - 6
	h := m.height - 7
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	m.logViewport.Width = w
	m.logViewport.Height = h
	m.logViewport.SetContent(GameLogStyle.Render(strings.Join(m.gameLog, "\n")))
}

const sidebarWidth = 28

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		if m.err != nil {
			return ErrorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
		}
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	logPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(m.logViewport.Width + 2).
		Height(m.logViewport.Height).
		Render(m.logViewport.View())

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(m.logViewport.Height).
		Render(m.renderSidebar())

	inputPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(m.width - 4).
		Render(m.renderInputPane())

	top := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Left, top, inputPane)
}

func (m *Model) renderInputPane() string {
	if m.prompt != nil {
		return m.moveInput.View()
	}
	if m.playAgain != nil {
		return InfoStyle.Render("Play again? (y/n)")
	}
	return InfoStyle.Render("Computer is thinking...")
}

func (m *Model) renderSidebar() string {
	var b strings.Builder

	b.WriteString(TurnStyle.Render(fmt.Sprintf("Turn: %s", m.turn)) + "\n\n")
	b.WriteString(fmt.Sprintf("Sticks: %d of %d\n", m.sticks, m.starting))
	b.WriteString(StickStyle.Render(RenderSticks(m.sticks)) + "\n\n")

	if m.sticks > 0 {
		if m.hint == minimax.Win {
			b.WriteString(WinningStyle.Render("Mover stands well") + "\n")
		} else {
			b.WriteString(LosingStyle.Render("Mover stands badly") + "\n")
		}
	}

	b.WriteString("\n" + InfoStyle.Render("enter: take sticks\nesc: quit"))
	return b.String()
}

// RenderSticks draws the pile as bars in groups of five.
func RenderSticks(count int) string {
	if count <= 0 {
		return "(empty)"
	}

	var groups []string
	for count > 0 {
		n := count
		if n > 5 {
			n = 5
		}
		groups = append(groups, strings.Repeat("|", n))
		count -= n
	}
	return strings.Join(groups, " ")
}
