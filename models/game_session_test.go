package models

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceRandom returns the queued indexes in order, clamped to n
type sequenceRandom struct {
	values []int
}

func (r *sequenceRandom) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

func newTestSession(word string, attempts int) *GameSession {
	return NewGameSession("test-id", "ana", "frutas", word, attempts, time.Unix(1700000000, 0))
}

func TestNewGameSession_Start(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		word     string
		attempts int
		revealed []rune
		board    string
	}{
		{name: "plain word", word: "pera", attempts: 6, revealed: []rune{}, board: "_ _ _ _"},
		{name: "space is pre-revealed", word: "ice cream", attempts: 4, revealed: []rune{' '}, board: "_ _ _   _ _ _ _ _"},
		{name: "hyphen is pre-revealed", word: "x-ray", attempts: 8, revealed: []rune{'-'}, board: "_ - _ _ _"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession(tt.word, tt.attempts)

			assert.Equal(t, tt.attempts, s.AttemptsLeft())
			assert.Equal(t, tt.revealed, s.CorrectSet())
			assert.Empty(t, s.IncorrectSet())
			assert.Equal(t, GameStatusInProgress, s.Status())
			assert.Equal(t, tt.board, s.Render())
		})
	}
}

func TestNewGameSession_NormalizesWord(t *testing.T) {
	t.Parallel()

	s := newTestSession("  Ñandú ", 6)
	assert.Equal(t, "ñandú", s.Word())
}

func TestGameSession_Guess_Outcomes(t *testing.T) {
	t.Parallel()

	s := newTestSession("pera", 6)

	outcome, err := s.Guess("p")
	require.NoError(t, err)
	assert.Equal(t, GuessOutcomeCorrect, outcome)
	assert.Equal(t, 6, s.AttemptsLeft())

	outcome, err = s.Guess("z")
	require.NoError(t, err)
	assert.Equal(t, GuessOutcomeIncorrect, outcome)
	assert.Equal(t, 5, s.AttemptsLeft())
	assert.True(t, s.IsMissed('z'))

	outcome, err = s.Guess("E")
	require.NoError(t, err)
	assert.Equal(t, GuessOutcomeCorrect, outcome)
	assert.Equal(t, "p e _ _", s.Render())
}

func TestGameSession_Guess_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only spaces", input: "   "},
		{name: "two letters", input: "ab"},
		{name: "digit", input: "7"},
		{name: "punctuation", input: "?"},
		{name: "repeat correct letter", input: "p"},
		{name: "repeat incorrect letter", input: "z"},
		{name: "repeat incorrect letter in upper case", input: "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newTestSession("pera", 6)
			_, err := s.Guess("p")
			require.NoError(t, err)
			_, err = s.Guess("z")
			require.NoError(t, err)

			correct := s.CorrectSet()
			incorrect := s.IncorrectSet()
			attempts := s.AttemptsLeft()

			outcome, err := s.Guess(tt.input)

			assert.ErrorIs(t, err, ErrInvalidGuess)
			assert.Empty(t, outcome)
			assert.Equal(t, correct, s.CorrectSet())
			assert.Equal(t, incorrect, s.IncorrectSet())
			assert.Equal(t, attempts, s.AttemptsLeft())
		})
	}
}

func TestGameSession_Guess_WinRegardlessOfOrder(t *testing.T) {
	t.Parallel()

	word := "murciélago"
	letters := []string{"m", "u", "r", "c", "i", "é", "l", "a", "g", "o"}
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 20; round++ {
		order := make([]string, len(letters))
		copy(order, letters)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		s := newTestSession(word, 4)
		var last GuessOutcome
		for i, letter := range order {
			outcome, err := s.Guess(letter)
			require.NoError(t, err)
			if i < len(order)-1 {
				assert.Equal(t, GuessOutcomeCorrect, outcome)
			}
			last = outcome
		}

		assert.Equal(t, GuessOutcomeWin, last, "order %v", order)
		assert.Equal(t, GameStatusWon, s.Status())
		assert.Equal(t, 4, s.AttemptsLeft())
	}
}

func TestGameSession_Guess_LossOnLastAttempt(t *testing.T) {
	t.Parallel()

	for _, attempts := range []int{4, 6, 8} {
		s := newTestSession("sol", attempts)
		misses := []string{"a", "b", "c", "d", "e", "f", "g", "h"}[:attempts]

		for i, letter := range misses {
			outcome, err := s.Guess(letter)
			require.NoError(t, err)
			if i < attempts-1 {
				assert.Equal(t, GuessOutcomeIncorrect, outcome)
				assert.Equal(t, GameStatusInProgress, s.Status())
			} else {
				assert.Equal(t, GuessOutcomeLoss, outcome)
			}
		}

		assert.Equal(t, GameStatusLost, s.Status())
		assert.Equal(t, 0, s.AttemptsLeft())
	}
}

func TestGameSession_Guess_AfterFinish(t *testing.T) {
	t.Parallel()

	s := newTestSession("a", 6)
	outcome, err := s.Guess("a")
	require.NoError(t, err)
	assert.Equal(t, GuessOutcomeWin, outcome)

	_, err = s.Guess("b")
	assert.ErrorIs(t, err, ErrSessionFinished)
	assert.Empty(t, s.IncorrectSet())
}

func TestGameSession_Hint(t *testing.T) {
	t.Parallel()

	s := newTestSession("pera", 6)
	_, err := s.Guess("p")
	require.NoError(t, err)

	letter, ok := s.Hint(&sequenceRandom{values: []int{1}})

	require.True(t, ok)
	// unrevealed letters in word order are e, r, a
	assert.Equal(t, 'r', letter)
	assert.Equal(t, 5, s.AttemptsLeft())
	assert.Equal(t, 1, s.HintsUsed())
	assert.True(t, s.IsRevealed('r'))
	assert.Len(t, s.CorrectSet(), 2)
	assert.Equal(t, GameStatusInProgress, s.Status())
}

func TestGameSession_Hint_DistinctLettersUniform(t *testing.T) {
	t.Parallel()

	// "aaab" has two distinct hidden letters no matter how often 'a' repeats
	seen := map[rune]bool{}
	for i := 0; i < 2; i++ {
		s := newTestSession("aaab", 6)
		letter, ok := s.Hint(&sequenceRandom{values: []int{i}})
		require.True(t, ok)
		seen[letter] = true
	}
	assert.Equal(t, map[rune]bool{'a': true, 'b': true}, seen)
}

func TestGameSession_Hint_RevealingLastLetterWins(t *testing.T) {
	t.Parallel()

	s := newTestSession("oso", 1)
	_, err := s.Guess("o")
	require.NoError(t, err)

	letter, ok := s.Hint(&sequenceRandom{})

	require.True(t, ok)
	assert.Equal(t, 's', letter)
	assert.Equal(t, 0, s.AttemptsLeft())
	assert.Equal(t, GameStatusWon, s.Status())
}

func TestGameSession_Hint_CanCauseLoss(t *testing.T) {
	t.Parallel()

	s := newTestSession("perro", 1)

	_, ok := s.Hint(&sequenceRandom{})

	require.True(t, ok)
	assert.Equal(t, GameStatusLost, s.Status())
}

func TestGameSession_Hint_NothingLeft(t *testing.T) {
	t.Parallel()

	s := newTestSession("ab", 6)
	_, err := s.Guess("a")
	require.NoError(t, err)
	_, err = s.Guess("b")
	require.NoError(t, err)

	correct := s.CorrectSet()
	letter, ok := s.Hint(&sequenceRandom{})

	assert.False(t, ok)
	assert.Zero(t, letter)
	assert.Equal(t, 6, s.AttemptsLeft())
	assert.Equal(t, correct, s.CorrectSet())
	assert.Equal(t, 0, s.HintsUsed())
}

func TestGameSession_Abandon(t *testing.T) {
	t.Parallel()

	s := newTestSession("pera", 6)
	s.Abandon()
	assert.Equal(t, GameStatusAbandoned, s.Status())
	assert.True(t, s.IsFinished())

	won := newTestSession("a", 6)
	_, err := won.Guess("a")
	require.NoError(t, err)
	won.Abandon()
	assert.Equal(t, GameStatusWon, won.Status())
}

func TestGameSession_Bonus(t *testing.T) {
	t.Parallel()

	s := newTestSession("a", 6)
	assert.Zero(t, s.Bonus(s.StartedAt))

	_, err := s.Guess("a")
	require.NoError(t, err)

	assert.Equal(t, 120+60, s.Bonus(s.StartedAt))
	assert.Equal(t, 60, s.Bonus(s.StartedAt.Add(10*time.Minute)))
}

func TestGameSession_Render_IsPure(t *testing.T) {
	t.Parallel()

	s := newTestSession("casa", 6)
	_, err := s.Guess("a")
	require.NoError(t, err)

	first := s.Render()
	second := s.Render()

	assert.Equal(t, "_ a _ a", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 6, s.AttemptsLeft())
}
