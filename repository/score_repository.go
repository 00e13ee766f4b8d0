package repository

import (
	"context"
	"fmt"

	"hangman/models"
)

// ScoreRepository implements the ScoreRepository interface over a loaded scoreboard
type ScoreRepository struct {
	board *models.ScoreBoard
}

// NewScoreRepository creates a score repository working on board
func NewScoreRepository(board *models.ScoreBoard) *ScoreRepository {
	return &ScoreRepository{board: board}
}

// GetByNickname returns the record for nickname, or nil when it does not exist
func (r *ScoreRepository) GetByNickname(ctx context.Context, nickname string) (*models.ScoreRecord, error) {
	record, ok := r.board.Get(nickname)
	if !ok {
		return nil, nil
	}
	return record, nil
}

// Create registers a new nickname with no wins and no losses
func (r *ScoreRepository) Create(ctx context.Context, nickname string) (*models.ScoreRecord, error) {
	record, err := r.board.Register(nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to create score record for %q: %w", nickname, err)
	}
	return record, nil
}

// IncrementWins adds a win to nickname
func (r *ScoreRepository) IncrementWins(ctx context.Context, nickname string) (*models.ScoreRecord, error) {
	record, err := r.board.RecordWin(nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to record win for %q: %w", nickname, err)
	}
	return record, nil
}

// IncrementLosses adds a loss to nickname
func (r *ScoreRepository) IncrementLosses(ctx context.Context, nickname string) (*models.ScoreRecord, error) {
	record, err := r.board.RecordLoss(nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to record loss for %q: %w", nickname, err)
	}
	return record, nil
}

// GetAll returns all records in store order
func (r *ScoreRepository) GetAll(ctx context.Context) ([]*models.ScoreRecord, error) {
	return r.board.Records(), nil
}
