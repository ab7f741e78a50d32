package game

import "time"

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart  EventType = "game_start"
	EventTypeGameEnd    EventType = "game_end"
	EventTypeMovePlayed EventType = "move_played"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when a new game begins
type GameStartEvent struct {
	Sticks    int
	First     PlayerType
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(sticks int, first PlayerType) GameStartEvent {
	return GameStartEvent{Sticks: sticks, First: first, timestamp: time.Now()}
}

// MovePlayedEvent is published when a move is applied
type MovePlayedEvent struct {
	Mover     PlayerType
	Take      Move
	Remaining int
	Reasoning string
	Hint      int // mod-4 display heuristic for the resulting count
	timestamp time.Time
}

func (e MovePlayedEvent) EventType() EventType { return EventTypeMovePlayed }
func (e MovePlayedEvent) Timestamp() time.Time { return e.timestamp }

// NewMovePlayedEvent creates a new move played event
func NewMovePlayedEvent(mover PlayerType, take Move, remaining int, reasoning string) MovePlayedEvent {
	return MovePlayedEvent{
		Mover:     mover,
		Take:      take,
		Remaining: remaining,
		Reasoning: reasoning,
		Hint:      Heuristic(remaining),
		timestamp: time.Now(),
	}
}

// GameEndEvent is published when a game completes
type GameEndEvent struct {
	Winner     PlayerType
	Loser      PlayerType
	TotalMoves int
	Transcript string
	timestamp  time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(winner PlayerType, totalMoves int, transcript string) GameEndEvent {
	return GameEndEvent{
		Winner:     winner,
		Loser:      winner.Other(),
		TotalMoves: totalMoves,
		Transcript: transcript,
		timestamp:  time.Now(),
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	HandleEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, s := range bus.subscribers {
		if s == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.HandleEvent(event)
	}
}
