package service

import (
	"context"

	"hangman/events"
	"hangman/models"
)

// ScoreRepository defines the interface for score store access
type ScoreRepository interface {
	// GetByNickname retrieves a record, returning nil when the nickname is unknown
	GetByNickname(ctx context.Context, nickname string) (*models.ScoreRecord, error)

	// Create registers a nickname with no wins and no losses
	Create(ctx context.Context, nickname string) (*models.ScoreRecord, error)

	// IncrementWins adds one win to a nickname
	IncrementWins(ctx context.Context, nickname string) (*models.ScoreRecord, error)

	// IncrementLosses adds one loss to a nickname
	IncrementLosses(ctx context.Context, nickname string) (*models.ScoreRecord, error)

	// GetAll returns every record in store order
	GetAll(ctx context.Context) ([]*models.ScoreRecord, error)
}

// PlayerService defines the interface for player registration
type PlayerService interface {
	// RegisterPlayer adds a new unique nickname to the score store
	RegisterPlayer(ctx context.Context, nickname string) (*models.ScoreRecord, error)
}

// GameService defines the interface for running rounds
type GameService interface {
	// Categories returns every category with its word count
	Categories() []models.CategorySummary

	// WordBank returns the loaded word bank
	WordBank() *models.WordBank

	// StartGame deals a new round from category; an empty category picks a random playable one
	StartGame(ctx context.Context, nickname, category string, difficulty models.Difficulty) (*models.GameSession, error)

	// Hint reveals one letter of the session at the cost of one attempt
	Hint(session *models.GameSession) (rune, bool)

	// FinishGame persists the result of a won or lost session
	FinishGame(ctx context.Context, session *models.GameSession) (*models.ScoreRecord, error)
}

// StatsService defines the interface for statistics operations
type StatsService interface {
	// GetLeaderboard returns the top players ordered by wins, then losses, then nickname
	GetLeaderboard(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)

	// GetPlayerStats returns the record and rank of a single player
	GetPlayerStats(ctx context.Context, nickname string) (*models.PlayerStats, error)
}

// EventPublisher defines the interface for publishing events inside a unit of work
type EventPublisher interface {
	Publish(event events.Event)
}

// EventEmitter defines the interface for emitting events outside a unit of work
type EventEmitter interface {
	Emit(ctx context.Context, event events.Event)
}

// UnitOfWork defines the interface for load-mutate-save cycles on the score store
type UnitOfWork interface {
	// Begin loads the store
	Begin(ctx context.Context) error

	// Commit rewrites the store and flushes pending events
	Commit() error

	// Rollback discards changes and pending events
	Rollback() error

	// Repository getters
	ScoreRepository() ScoreRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
