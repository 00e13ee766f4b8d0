package events

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// SubscribeLogging records every game lifecycle event in the application log
func SubscribeLogging(bus *Bus) {
	bus.Subscribe(EventTypePlayerRegistered, func(ctx context.Context, event Event) {
		if e, ok := event.(PlayerRegisteredEvent); ok {
			log.WithField("nickname", e.Nickname).Info("Player registered")
		}
	})
	bus.Subscribe(EventTypeGameStarted, func(ctx context.Context, event Event) {
		if e, ok := event.(GameStartedEvent); ok {
			log.WithFields(log.Fields{
				"session_id":   e.SessionID,
				"nickname":     e.Nickname,
				"category":     e.Category,
				"word_length":  e.WordLength,
				"max_attempts": e.MaxAttempts,
			}).Info("Game started")
		}
	})
	bus.Subscribe(EventTypeGameFinished, func(ctx context.Context, event Event) {
		if e, ok := event.(GameFinishedEvent); ok {
			log.WithFields(log.Fields{
				"session_id":    e.SessionID,
				"nickname":      e.Nickname,
				"category":      e.Category,
				"status":        e.Status,
				"attempts_left": e.AttemptsLeft,
				"hints_used":    e.HintsUsed,
				"wins":          e.Wins,
				"losses":        e.Losses,
			}).Info("Game finished")
		}
	})
}
