package events

import (
	"context"
	"testing"

	"hangman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionalBus_FlushDelivers(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	var received []GameFinishedEvent
	mainBus.Subscribe(EventTypeGameFinished, func(ctx context.Context, event Event) {
		e, ok := event.(GameFinishedEvent)
		require.True(t, ok, "expected GameFinishedEvent, got %T", event)
		received = append(received, e)
	})

	testEvent := GameFinishedEvent{
		SessionID:    "abc",
		Nickname:     "ana",
		Category:     "frutas",
		Word:         "pera",
		Status:       models.GameStatusWon,
		AttemptsLeft: 5,
		Wins:         1,
	}

	transactionalBus.Publish(testEvent)
	assert.Empty(t, received, "events must wait for Flush")
	assert.Equal(t, 1, transactionalBus.Pending())

	err := transactionalBus.Flush(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []GameFinishedEvent{testEvent}, received)
	assert.Zero(t, transactionalBus.Pending())
}

func TestTransactionalBus_DiscardDropsEvents(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	called := false
	mainBus.Subscribe(EventTypePlayerRegistered, func(ctx context.Context, event Event) {
		called = true
	})

	transactionalBus.Publish(PlayerRegisteredEvent{Nickname: "ana"})
	transactionalBus.Discard()
	require.NoError(t, transactionalBus.Flush(context.Background()))

	assert.False(t, called)
}

func TestBus_EmitInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe(EventTypeGameStarted, func(ctx context.Context, event Event) { order = append(order, 1) })
	bus.Subscribe(EventTypeGameStarted, func(ctx context.Context, event Event) { order = append(order, 2) })
	bus.Subscribe(EventTypeGameFinished, func(ctx context.Context, event Event) { order = append(order, 3) })

	bus.Emit(context.Background(), GameStartedEvent{SessionID: "abc"})

	assert.Equal(t, []int{1, 2}, order)
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe(EventTypeGameStarted, func(ctx context.Context, event Event) { panic("boom") })
	bus.Subscribe(EventTypeGameStarted, func(ctx context.Context, event Event) { called = true })

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), GameStartedEvent{})
	})
	assert.True(t, called)
}

func TestSubscribeLogging(t *testing.T) {
	bus := NewBus()
	SubscribeLogging(bus)

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), PlayerRegisteredEvent{Nickname: "ana"})
		bus.Emit(context.Background(), GameStartedEvent{SessionID: "abc", Nickname: "ana"})
		bus.Emit(context.Background(), GameFinishedEvent{SessionID: "abc", Status: models.GameStatusLost})
	})
}
