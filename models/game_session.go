package models

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"hangman/utils"
)

// GameStatus represents the state of a round
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusWon        GameStatus = "won"
	GameStatusLost       GameStatus = "lost"
	GameStatusAbandoned  GameStatus = "abandoned"
)

// GuessOutcome is the result of a single accepted guess
type GuessOutcome string

const (
	GuessOutcomeCorrect   GuessOutcome = "correct"
	GuessOutcomeIncorrect GuessOutcome = "incorrect"
	GuessOutcomeWin       GuessOutcome = "win"
	GuessOutcomeLoss      GuessOutcome = "loss"
)

// HiddenPlaceholder is rendered in place of letters not yet revealed
const HiddenPlaceholder = "_"

// RandomSource is the random number source used for word and hint selection.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// GameSession tracks one round of hangman. The secret word is fixed at creation;
// the correct and incorrect sets only change through Guess and Hint.
type GameSession struct {
	ID          string
	Nickname    string
	Category    string
	MaxAttempts int
	StartedAt   time.Time

	word      []rune
	correct   map[rune]bool
	incorrect map[rune]bool
	attempts  int
	hintsUsed int
	status    GameStatus
	recorded  bool
}

// NewGameSession starts a round on word with maxAttempts wrong guesses allowed.
// Characters that are not letters are revealed from the start.
func NewGameSession(id, nickname, category, word string, maxAttempts int, startedAt time.Time) *GameSession {
	s := &GameSession{
		ID:          id,
		Nickname:    nickname,
		Category:    category,
		MaxAttempts: maxAttempts,
		StartedAt:   startedAt,
		word:        []rune(utils.Normalize(word)),
		correct:     make(map[rune]bool),
		incorrect:   make(map[rune]bool),
		attempts:    maxAttempts,
		status:      GameStatusInProgress,
	}
	for _, r := range s.word {
		if !utils.IsLetter(r) {
			s.correct[r] = true
		}
	}
	s.evaluate()
	return s
}

// Word returns the secret word
func (s *GameSession) Word() string {
	return string(s.word)
}

// AttemptsLeft returns the remaining wrong guesses
func (s *GameSession) AttemptsLeft() int {
	return s.attempts
}

// HintsUsed returns how many hints were granted
func (s *GameSession) HintsUsed() int {
	return s.hintsUsed
}

// Status returns the current state of the round
func (s *GameSession) Status() GameStatus {
	return s.status
}

// IsFinished reports whether the round reached a terminal state
func (s *GameSession) IsFinished() bool {
	return s.status != GameStatusInProgress
}

// IsRevealed reports whether r is in the correct set
func (s *GameSession) IsRevealed(r rune) bool {
	return s.correct[r]
}

// IsMissed reports whether r is in the incorrect set
func (s *GameSession) IsMissed(r rune) bool {
	return s.incorrect[r]
}

// CorrectSet returns the revealed characters, sorted
func (s *GameSession) CorrectSet() []rune {
	return sortedRunes(s.correct)
}

// IncorrectSet returns the missed letters, sorted
func (s *GameSession) IncorrectSet() []rune {
	return sortedRunes(s.incorrect)
}

// Guess applies a single-letter guess. Invalid or repeated guesses return ErrInvalidGuess
// and leave the session unchanged.
func (s *GameSession) Guess(input string) (GuessOutcome, error) {
	if s.IsFinished() {
		return "", ErrSessionFinished
	}

	letter, err := parseLetter(input)
	if err != nil {
		return "", err
	}
	if s.correct[letter] || s.incorrect[letter] {
		return "", fmt.Errorf("%w: letter %q was already guessed", ErrInvalidGuess, string(letter))
	}

	outcome := GuessOutcomeIncorrect
	if slices.Contains(s.word, letter) {
		s.correct[letter] = true
		outcome = GuessOutcomeCorrect
	} else {
		s.incorrect[letter] = true
		s.attempts--
	}

	switch s.evaluate() {
	case GameStatusWon:
		return GuessOutcomeWin, nil
	case GameStatusLost:
		return GuessOutcomeLoss, nil
	}
	return outcome, nil
}

// Hint reveals one random unrevealed letter at the cost of one attempt.
// It returns false without side effects when nothing is left to reveal.
func (s *GameSession) Hint(rng RandomSource) (rune, bool) {
	if s.IsFinished() {
		return 0, false
	}
	remaining := s.unrevealed()
	if len(remaining) == 0 {
		return 0, false
	}

	letter := remaining[rng.IntN(len(remaining))]
	s.correct[letter] = true
	s.attempts--
	s.hintsUsed++
	s.evaluate()
	return letter, true
}

// Abandon ends a round that can no longer be played
func (s *GameSession) Abandon() {
	if s.status == GameStatusInProgress {
		s.status = GameStatusAbandoned
	}
}

// IsRecorded reports whether the result was already written to the score store
func (s *GameSession) IsRecorded() bool {
	return s.recorded
}

// MarkRecorded flags the result as persisted
func (s *GameSession) MarkRecorded() {
	s.recorded = true
}

// Render shows revealed characters and placeholders separated by single spaces
func (s *GameSession) Render() string {
	parts := make([]string, 0, len(s.word))
	for _, r := range s.word {
		if s.correct[r] {
			parts = append(parts, string(r))
		} else {
			parts = append(parts, HiddenPlaceholder)
		}
	}
	return strings.Join(parts, " ")
}

// Bonus returns the cosmetic speed bonus shown after a win. It is never added to the score.
func (s *GameSession) Bonus(now time.Time) int {
	if s.status != GameStatusWon {
		return 0
	}
	elapsed := int(now.Sub(s.StartedAt).Seconds())
	return max(0, 120-elapsed) + s.attempts*10
}

// evaluate updates the status; a completed word wins even if attempts are exhausted
func (s *GameSession) evaluate() GameStatus {
	if s.status != GameStatusInProgress {
		return s.status
	}
	if s.allRevealed() {
		s.status = GameStatusWon
	} else if s.attempts <= 0 {
		s.status = GameStatusLost
	}
	return s.status
}

func (s *GameSession) allRevealed() bool {
	for _, r := range s.word {
		if !s.correct[r] {
			return false
		}
	}
	return true
}

// unrevealed returns distinct hidden letters in word order
func (s *GameSession) unrevealed() []rune {
	var out []rune
	for _, r := range s.word {
		if !s.correct[r] && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

func parseLetter(input string) (rune, error) {
	normalized := utils.Normalize(input)
	if normalized == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidGuess)
	}
	runes := []rune(normalized)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: enter a single letter at a time", ErrInvalidGuess)
	}
	if !utils.IsLetter(runes[0]) {
		return 0, fmt.Errorf("%w: %q is not a letter", ErrInvalidGuess, normalized)
	}
	return runes[0], nil
}

func sortedRunes(set map[rune]bool) []rune {
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
