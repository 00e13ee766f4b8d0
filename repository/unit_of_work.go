package repository

import (
	"context"
	"fmt"

	"hangman/events"
	"hangman/models"
	"hangman/service"
)

// unitOfWork implements the UnitOfWork interface on top of the score file.
// Begin loads the whole file, repositories mutate the loaded copy and Commit
// rewrites the file before flushing pending events.
type unitOfWork struct {
	store            *ScoreStore
	board            *models.ScoreBoard
	ctx              context.Context
	transactionalBus *events.TransactionalBus
	scoreRepo        service.ScoreRepository
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(store *ScoreStore, eventBus *events.Bus) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		store:    store,
		eventBus: eventBus,
	}
}

type unitOfWorkFactory struct {
	store    *ScoreStore
	eventBus *events.Bus
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		store:            f.store,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
	}
}

// Begin loads the score file
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.board != nil {
		return fmt.Errorf("transaction already started")
	}

	board, err := u.store.Load()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.board = board
	u.ctx = ctx
	u.scoreRepo = NewScoreRepository(board)

	return nil
}

// Commit rewrites the score file with the working copy
func (u *unitOfWork) Commit() error {
	if u.board == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.store.Save(u.board); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.board = nil
	u.scoreRepo = nil

	// Flush pending events after successful commit
	if u.transactionalBus != nil {
		u.transactionalBus.Flush(u.ctx)
	}

	return nil
}

// Rollback drops the working copy
func (u *unitOfWork) Rollback() error {
	if u.board == nil {
		return nil // Nothing to rollback
	}

	u.board = nil
	u.scoreRepo = nil

	// Discard pending events on rollback
	if u.transactionalBus != nil {
		u.transactionalBus.Discard()
	}

	return nil
}

// ScoreRepository returns the score repository for this unit of work
func (u *unitOfWork) ScoreRepository() service.ScoreRepository {
	if u.scoreRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.scoreRepo
}

// EventBus returns the transactional event bus for this unit of work
func (u *unitOfWork) EventBus() service.EventPublisher {
	if u.transactionalBus == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalBus
}
