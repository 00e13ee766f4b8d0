package service

import (
	"context"
	"fmt"

	"hangman/events"
	"hangman/models"
)

// playerService implements the PlayerService interface
type playerService struct {
	uowFactory UnitOfWorkFactory
}

// NewPlayerService creates a new player service
func NewPlayerService(uowFactory UnitOfWorkFactory) PlayerService {
	return &playerService{
		uowFactory: uowFactory,
	}
}

// RegisterPlayer adds a new unique nickname to the score store
func (s *playerService) RegisterPlayer(ctx context.Context, nickname string) (*models.ScoreRecord, error) {
	nickname, err := models.ValidateNickname(nickname)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	existing, err := uow.ScoreRepository().GetByNickname(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing player: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrDuplicateNickname, nickname)
	}

	record, err := uow.ScoreRepository().Create(ctx, nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	uow.EventBus().Publish(events.PlayerRegisteredEvent{Nickname: record.Nickname})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	return record, nil
}
