package service

import (
	"context"
	"fmt"
	"time"

	"hangman/events"
	"hangman/models"
	"hangman/utils"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RandomCategory asks StartGame to pick any playable category
const RandomCategory = "random"

// GameConfig holds the game settings the service needs
type GameConfig struct {
	DefaultDifficulty models.Difficulty
}

// gameService implements the GameService interface
type gameService struct {
	bank       *models.WordBank
	uowFactory UnitOfWorkFactory
	emitter    EventEmitter
	rng        models.RandomSource
	now        func() time.Time
	config     GameConfig
}

// NewGameService creates a new game service over a loaded word bank.
// rng drives category, word and hint selection.
func NewGameService(bank *models.WordBank, uowFactory UnitOfWorkFactory, emitter EventEmitter, rng models.RandomSource, config GameConfig) GameService {
	if config.DefaultDifficulty == "" {
		config.DefaultDifficulty = models.DifficultyNormal
	}
	return &gameService{
		bank:       bank,
		uowFactory: uowFactory,
		emitter:    emitter,
		rng:        rng,
		now:        time.Now,
		config:     config,
	}
}

// Categories returns every category with its word count
func (s *gameService) Categories() []models.CategorySummary {
	names := s.bank.Categories()
	out := make([]models.CategorySummary, 0, len(names))
	for _, name := range names {
		out = append(out, models.CategorySummary{
			Name:      name,
			WordCount: len(s.bank.Words(name)),
		})
	}
	return out
}

// WordBank returns the loaded word bank
func (s *gameService) WordBank() *models.WordBank {
	return s.bank
}

// StartGame deals a new round from category; an empty category picks a random playable one
func (s *gameService) StartGame(ctx context.Context, nickname, category string, difficulty models.Difficulty) (*models.GameSession, error) {
	if s.bank.TotalWords() == 0 {
		return nil, models.ErrNoWords
	}
	if difficulty == "" {
		difficulty = s.config.DefaultDifficulty
	}

	name, err := s.resolveCategory(category)
	if err != nil {
		return nil, err
	}

	words := s.bank.Words(name)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrEmptyCategory, name)
	}
	word := words[s.rng.IntN(len(words))]

	session := models.NewGameSession(uuid.NewString(), nickname, name, word, difficulty.Attempts(), s.now())

	if s.emitter != nil {
		s.emitter.Emit(ctx, events.GameStartedEvent{
			SessionID:   session.ID,
			Nickname:    nickname,
			Category:    name,
			WordLength:  len([]rune(word)),
			MaxAttempts: session.MaxAttempts,
		})
	}

	return session, nil
}

func (s *gameService) resolveCategory(category string) (string, error) {
	name := utils.Normalize(category)
	if name == "" || name == RandomCategory {
		playable := s.bank.Playable()
		if len(playable) == 0 {
			return "", models.ErrNoWords
		}
		return playable[s.rng.IntN(len(playable))], nil
	}
	if !s.bank.HasCategory(name) {
		return "", fmt.Errorf("%w: %s", models.ErrUnknownCategory, name)
	}
	return name, nil
}

// Hint reveals one letter of the session at the cost of one attempt
func (s *gameService) Hint(session *models.GameSession) (rune, bool) {
	letter, ok := session.Hint(s.rng)
	log.WithFields(log.Fields{
		"session_id":    session.ID,
		"granted":       ok,
		"attempts_left": session.AttemptsLeft(),
	}).Debug("Hint requested")
	return letter, ok
}

// FinishGame persists the result of a won or lost session.
// Abandoned sessions are not scored and return a nil record.
func (s *gameService) FinishGame(ctx context.Context, session *models.GameSession) (*models.ScoreRecord, error) {
	switch session.Status() {
	case models.GameStatusWon, models.GameStatusLost:
	case models.GameStatusAbandoned:
		log.WithFields(log.Fields{
			"session_id": session.ID,
			"nickname":   session.Nickname,
		}).Info("Abandoned game is not scored")
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrSessionInProgress, session.ID)
	}
	if session.IsRecorded() {
		return nil, fmt.Errorf("%w: %s", models.ErrResultRecorded, session.ID)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	var (
		record *models.ScoreRecord
		err    error
	)
	if session.Status() == models.GameStatusWon {
		record, err = uow.ScoreRepository().IncrementWins(ctx, session.Nickname)
	} else {
		record, err = uow.ScoreRepository().IncrementLosses(ctx, session.Nickname)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	uow.EventBus().Publish(events.GameFinishedEvent{
		SessionID:    session.ID,
		Nickname:     session.Nickname,
		Category:     session.Category,
		Word:         session.Word(),
		Status:       session.Status(),
		AttemptsLeft: session.AttemptsLeft(),
		HintsUsed:    session.HintsUsed(),
		Wins:         record.Wins,
		Losses:       record.Losses,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}
	session.MarkRecorded()

	return record, nil
}
