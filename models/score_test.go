package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNickname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "ana", want: "ana"},
		{name: "trimmed", input: "  ana  ", want: "ana"},
		{name: "inner spaces allowed", input: "ana maria", want: "ana maria"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "comma", input: "a,b", wantErr: true},
		{name: "tab inside", input: "a\tb", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateNickname(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNickname)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreBoard_Register(t *testing.T) {
	t.Parallel()

	board := NewScoreBoard()

	record, err := board.Register("ana")
	require.NoError(t, err)
	assert.Equal(t, &ScoreRecord{Nickname: "ana"}, record)

	_, err = board.Register(" ana ")
	assert.ErrorIs(t, err, ErrDuplicateNickname)

	_, err = board.Register("a,b")
	assert.ErrorIs(t, err, ErrInvalidNickname)

	assert.Equal(t, 1, board.Len())
}

func TestScoreBoard_RecordResults(t *testing.T) {
	t.Parallel()

	board := NewScoreBoard()
	_, err := board.Register("ana")
	require.NoError(t, err)

	record, err := board.RecordWin("ana")
	require.NoError(t, err)
	assert.Equal(t, 1, record.Wins)

	record, err = board.RecordLoss("ana")
	require.NoError(t, err)
	assert.Equal(t, 1, record.Losses)

	// unknown nicknames are created on first result
	record, err = board.RecordLoss("beto")
	require.NoError(t, err)
	assert.Equal(t, &ScoreRecord{Nickname: "beto", Losses: 1}, record)

	assert.Equal(t, []*ScoreRecord{
		{Nickname: "ana", Wins: 1, Losses: 1},
		{Nickname: "beto", Losses: 1},
	}, board.Records())
}

func TestScoreBoard_PutKeepsFirstPosition(t *testing.T) {
	t.Parallel()

	board := NewScoreBoard()
	require.NoError(t, board.Put(ScoreRecord{Nickname: "ana", Wins: 1}))
	require.NoError(t, board.Put(ScoreRecord{Nickname: "beto", Wins: 2}))
	require.NoError(t, board.Put(ScoreRecord{Nickname: "ana", Wins: 5, Losses: 3}))

	assert.Equal(t, []*ScoreRecord{
		{Nickname: "ana", Wins: 5, Losses: 3},
		{Nickname: "beto", Wins: 2},
	}, board.Records())
}

func TestScoreBoard_PutValidates(t *testing.T) {
	t.Parallel()

	board := NewScoreBoard()
	require.NoError(t, board.Put(ScoreRecord{Nickname: "  ana ", Wins: 2, Losses: 1}))

	got, ok := board.Get("ana")
	require.True(t, ok)
	assert.Equal(t, &ScoreRecord{Nickname: "ana", Wins: 2, Losses: 1}, got)

	// Same nickname after trimming updates in place
	require.NoError(t, board.Put(ScoreRecord{Nickname: "ana", Wins: 3}))
	assert.Equal(t, 1, board.Len())

	assert.ErrorIs(t, board.Put(ScoreRecord{Nickname: "a,b"}), ErrInvalidNickname)
	assert.ErrorIs(t, board.Put(ScoreRecord{Nickname: " "}), ErrInvalidNickname)
	assert.ErrorIs(t, board.Put(ScoreRecord{Nickname: "beto", Wins: -1}), ErrInvalidScore)
	assert.Equal(t, 1, board.Len())
}

func TestScoreBoard_CopiesAreDetached(t *testing.T) {
	t.Parallel()

	board := NewScoreBoard()
	require.NoError(t, board.Put(ScoreRecord{Nickname: "ana", Wins: 1}))

	got, ok := board.Get("ana")
	require.True(t, ok)
	got.Wins = 99

	clone := board.Clone()
	_, err := clone.RecordWin("ana")
	require.NoError(t, err)

	original, _ := board.Get("ana")
	assert.Equal(t, 1, original.Wins)
	cloned, _ := clone.Get("ana")
	assert.Equal(t, 2, cloned.Wins)
}

func TestScoreRecord_WinRate(t *testing.T) {
	t.Parallel()

	assert.Zero(t, (&ScoreRecord{}).WinRate())
	assert.InDelta(t, 75.0, (&ScoreRecord{Wins: 3, Losses: 1}).WinRate(), 0.001)
	assert.Equal(t, 4, (&ScoreRecord{Wins: 3, Losses: 1}).GamesPlayed())
}
