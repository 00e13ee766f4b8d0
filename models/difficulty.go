package models

import (
	"fmt"
	"strings"
)

// Difficulty selects how many wrong guesses a round allows
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// DefaultAttempts is the attempt count of a normal round
const DefaultAttempts = 6

// Difficulties returns the difficulties in menu order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Attempts returns the number of wrong guesses allowed at this difficulty
func (d Difficulty) Attempts() int {
	switch d {
	case DifficultyEasy:
		return 8
	case DifficultyHard:
		return 4
	default:
		return DefaultAttempts
	}
}

// ParseDifficulty accepts English and Spanish names
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "facil", "fácil":
		return DifficultyEasy, nil
	case "normal", "medium", "medio":
		return DifficultyNormal, nil
	case "hard", "dificil", "difícil":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}
