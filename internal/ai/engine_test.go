package ai

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/matchsticks/internal/game"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func view(sticks int) game.View {
	return game.View{
		Sticks: sticks,
		Phase:  game.AIToMove,
		Hint:   game.Heuristic(sticks),
	}
}

func TestEngine_PlaysWinningMove(t *testing.T) {
	engine := NewEngine(testLogger())

	decision := engine.MakeDecision(view(15), game.ValidMoves(15))

	// 15 is winning; the reply must leave a multiple of 4.
	assert.Equal(t, game.Move(3), decision.Move)
	assert.Contains(t, decision.Reasoning, "winning")
}

func TestEngine_LostPositionStaysLegal(t *testing.T) {
	engine := NewEngine(testLogger())

	decision := engine.MakeDecision(view(16), game.ValidMoves(16))

	// Every reply from 16 loses; the tie-break is the lowest take.
	assert.Equal(t, game.Move(1), decision.Move)
	assert.Contains(t, decision.Reasoning, "lost")
}

func TestEngine_BeatsItselfFromLosingStart(t *testing.T) {
	// AI vs AI from a multiple of 4: the second mover always wins.
	g := game.NewGame(16, game.Human)
	engine := NewEngine(testLogger())
	agents := map[game.PlayerType]game.Agent{
		game.Human: engine,
		game.AI:    NewEngine(testLogger()),
	}

	result, err := game.NewEngine(g, agents, testLogger()).PlayGame()
	require.NoError(t, err)
	assert.Equal(t, game.AI, result.Winner)
}

func TestEngine_ThinkDelayUsesClock(t *testing.T) {
	mock := quartz.NewMock(t)
	engine := NewEngine(testLogger(), WithDelay(500*time.Millisecond), WithClock(mock))

	trap := mock.Trap().NewTimer()
	defer trap.Close()

	done := make(chan game.Decision, 1)
	go func() {
		done <- engine.MakeDecision(view(9), game.ValidMoves(9))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	call, err := trap.Wait(ctx)
	require.NoError(t, err)
	call.MustRelease(ctx)

	mock.Advance(500 * time.Millisecond).MustWait(ctx)

	select {
	case decision := <-done:
		assert.Equal(t, game.Move(1), decision.Move) // 9 -> 8, a multiple of 4
	case <-time.After(5 * time.Second):
		t.Fatal("decision did not complete after clock advance")
	}
}

func TestEngine_NewGameResetsCache(t *testing.T) {
	engine := NewEngine(testLogger())

	engine.MakeDecision(view(20), game.ValidMoves(20))
	require.NotZero(t, engine.Evaluator().CacheSize())

	engine.NewGame()
	assert.Zero(t, engine.Evaluator().CacheSize())
}
