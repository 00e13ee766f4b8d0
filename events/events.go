package events

import (
	"context"
	"sync"

	"hangman/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypePlayerRegistered EventType = "player_registered"
	EventTypeGameStarted      EventType = "game_started"
	EventTypeGameFinished     EventType = "game_finished"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// PlayerRegisteredEvent represents a new nickname added to the score store
type PlayerRegisteredEvent struct {
	Nickname string
}

func (e PlayerRegisteredEvent) Type() EventType {
	return EventTypePlayerRegistered
}

// GameStartedEvent represents a round that has just been dealt
type GameStartedEvent struct {
	SessionID   string
	Nickname    string
	Category    string
	WordLength  int
	MaxAttempts int
}

func (e GameStartedEvent) Type() EventType {
	return EventTypeGameStarted
}

// GameFinishedEvent represents a completed round whose result was persisted
type GameFinishedEvent struct {
	SessionID    string
	Nickname     string
	Category     string
	Word         string
	Status       models.GameStatus
	AttemptsLeft int
	HintsUsed    int
	Wins         int
	Losses       int
}

func (e GameFinishedEvent) Type() EventType {
	return EventTypeGameFinished
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit calls every handler registered for the event type, in subscription order,
// on the caller's goroutine. A panicking handler is logged and skipped.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	for i, handler := range handlers {
		b.dispatch(ctx, event, handler, i)
	}
}

func (b *Bus) dispatch(ctx context.Context, event Event, h Handler, handlerIndex int) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"eventType":    event.Type(),
				"handlerIndex": handlerIndex,
				"panic":        r,
			}).Error("Event handler panicked")
		}
	}()
	h(ctx, event)
}

// TransactionalBus holds events raised inside a unit of work until it commits.
type TransactionalBus struct {
	real    *Bus
	pending []Event // stashed until Flush
}

func NewTransactionalBus(real *Bus) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	log.WithFields(log.Fields{
		"eventType":    e.Type(),
		"pendingCount": len(b.pending),
	}).Debug("Adding event to transactional bus pending queue")
	b.pending = append(b.pending, e)
}

// called after the score file was rewritten
func (b *TransactionalBus) Flush(ctx context.Context) error {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending events to main event bus")

	if b.real != nil {
		for _, ev := range b.pending {
			b.real.Emit(ctx, ev)
		}
	}
	b.pending = nil
	return nil
}

// called after rollback or to clear state.
func (b *TransactionalBus) Discard() {
	b.pending = nil
}

// Pending returns the number of events waiting for Flush
func (b *TransactionalBus) Pending() int {
	return len(b.pending)
}
