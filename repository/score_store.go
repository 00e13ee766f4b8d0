package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hangman/models"

	log "github.com/sirupsen/logrus"
)

// ScoreStore is the score file on disk. It is always read and rewritten as a whole;
// concurrent writers from other processes are not guarded against.
type ScoreStore struct {
	path string
}

// NewScoreStore creates a store for the score file at path
func NewScoreStore(path string) *ScoreStore {
	return &ScoreStore{path: path}
}

// Load reads the whole score file. A missing file is an empty scoreboard.
func (s *ScoreStore) Load() (*models.ScoreBoard, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.NewScoreBoard(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open score store %s: %w", s.path, err)
	}
	defer f.Close()

	return ParseScores(f)
}

// Save replaces the score file with board, writing a sibling temp file first
func (s *ScoreStore) Save(board *models.ScoreBoard) (err error) {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp score file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = SerializeScores(tmp, board); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp score file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace score store %s: %w", s.path, err)
	}

	log.WithFields(log.Fields{
		"path":    s.path,
		"records": board.Len(),
	}).Debug("Score store saved")
	return nil
}
