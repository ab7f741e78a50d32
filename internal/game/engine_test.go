package game

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// MockAgent is a simple test agent that follows a predetermined script
type MockAgent struct {
	moves []Move
	index int
}

func NewMockAgent(moves []Move) *MockAgent {
	return &MockAgent{moves: moves}
}

func (m *MockAgent) MakeDecision(view View, valid []Move) Decision {
	if m.index >= len(m.moves) {
		// Default to the lowest move if we run out of scripted moves
		return Decision{Move: valid[0], Reasoning: "script exhausted"}
	}

	move := m.moves[m.index]
	m.index++
	return Decision{Move: move, Reasoning: "scripted"}
}

// eventRecorder captures published events for assertions
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) HandleEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestEngine_PlayGame(t *testing.T) {
	// 7 -> 4 -> 3 -> 0: the human's last take empties the pile.
	g := NewGame(7, Human)
	agents := map[PlayerType]Agent{
		Human: NewMockAgent([]Move{3, 3, 1}),
		AI:    NewMockAgent([]Move{1, 2, 1}),
	}
	engine := NewEngine(g, agents, testLogger())

	result, err := engine.PlayGame()
	if err != nil {
		t.Fatalf("PlayGame failed: %v", err)
	}

	if result.Loser != Human {
		t.Errorf("Expected Human to lose, got %v", result.Loser)
	}
	if result.Winner != AI {
		t.Errorf("Expected AI to win, got %v", result.Winner)
	}
	if result.TotalMoves != 3 {
		t.Errorf("Expected 3 moves, got %d", result.TotalMoves)
	}
	if !strings.Contains(result.Transcript, "You took the last stick and lose") {
		t.Errorf("Transcript missing loser line:\n%s", result.Transcript)
	}
	if result.GameID == "" || result.GameID != engine.ID() {
		t.Errorf("Result game ID %q does not match engine ID %q", result.GameID, engine.ID())
	}
}

func TestEngine_PublishesEvents(t *testing.T) {
	g := NewGame(2, Human)
	agents := map[PlayerType]Agent{
		Human: NewMockAgent([]Move{1}),
		AI:    NewMockAgent([]Move{1}),
	}
	engine := NewEngine(g, agents, testLogger())

	recorder := &eventRecorder{}
	engine.EventBus().Subscribe(recorder)

	if _, err := engine.PlayGame(); err != nil {
		t.Fatalf("PlayGame failed: %v", err)
	}

	// start, two moves, end
	if len(recorder.events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(recorder.events))
	}
	if recorder.events[0].EventType() != EventTypeGameStart {
		t.Errorf("First event is %v, want game_start", recorder.events[0].EventType())
	}
	if recorder.events[1].EventType() != EventTypeMovePlayed {
		t.Errorf("Second event is %v, want move_played", recorder.events[1].EventType())
	}
	if recorder.events[3].EventType() != EventTypeGameEnd {
		t.Errorf("Last event is %v, want game_end", recorder.events[3].EventType())
	}

	end := recorder.events[3].(GameEndEvent)
	if end.Winner != Human {
		t.Errorf("Expected Human to win (AI took last stick), got %v", end.Winner)
	}
}

func TestEngine_IllegalDecisionFallsBack(t *testing.T) {
	g := NewGame(2, Human)
	agents := map[PlayerType]Agent{
		Human: NewMockAgent([]Move{3, 1}), // 3 is illegal with 2 sticks
		AI:    NewMockAgent([]Move{1}),
	}
	engine := NewEngine(g, agents, testLogger())

	if err := engine.PlayTurn(); err != nil {
		t.Fatalf("PlayTurn failed: %v", err)
	}

	// Fallback is the lowest valid move.
	if g.Sticks != 1 {
		t.Errorf("Expected fallback to take 1 stick, %d remaining", g.Sticks)
	}
	if g.Turn() != AI {
		t.Errorf("Expected turn to advance to AI, got %v", g.Turn())
	}
}

func TestEngine_RequiresBothAgents(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewEngine with a missing agent did not panic")
		}
	}()

	NewEngine(NewGame(5, Human), map[PlayerType]Agent{Human: NewMockAgent(nil)}, testLogger())
}

func TestHistory_Transcript(t *testing.T) {
	h := NewHistory(5)
	h.Record(Human, 2, 3)
	h.Record(AI, 3, 0)

	transcript := h.Transcript()
	for _, want := range []string{
		"GAME of 5 sticks",
		"You took 2, 3 left",
		"Computer took 3, 0 left",
		"Computer took the last stick and loses. You win!",
	} {
		if !strings.Contains(transcript, want) {
			t.Errorf("Transcript missing %q:\n%s", want, transcript)
		}
	}
}
