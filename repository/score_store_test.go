package repository

import (
	"os"
	"path/filepath"
	"testing"

	"hangman/models"
	"hangman/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreStore_LoadMissingFile(t *testing.T) {
	files := testutil.SetupTestFiles(t)
	store := NewScoreStore(files.ScoresPath)

	board, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, 0, board.Len())
}

func TestScoreStore_SaveAndLoad(t *testing.T) {
	files := testutil.SetupTestFiles(t)
	store := NewScoreStore(files.ScoresPath)

	board := testutil.CreateTestScoreBoard(
		models.ScoreRecord{Nickname: "ana", Wins: 1, Losses: 0},
		models.ScoreRecord{Nickname: "beto", Wins: 0, Losses: 1},
	)
	require.NoError(t, store.Save(board))
	assert.Equal(t, "ana,1,0\nbeto,0,1\n", files.ReadScores(t))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, board.Records(), loaded.Records())

	// No temp files are left behind
	entries, err := os.ReadDir(files.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScoreStore_SaveOverwrites(t *testing.T) {
	files := testutil.SetupTestFiles(t)
	files.WriteScores(t, "old,9,9\nbob,abc,2\n")
	store := NewScoreStore(files.ScoresPath)

	board, err := store.Load()
	require.NoError(t, err)
	_, err = board.RecordWin("ana")
	require.NoError(t, err)
	require.NoError(t, store.Save(board))

	// Corrupt rows are dropped on the next rewrite
	assert.Equal(t, "old,9,9\nana,1,0\n", files.ReadScores(t))
}

func TestScoreStore_SaveMissingDirectory(t *testing.T) {
	files := testutil.SetupTestFiles(t)
	store := NewScoreStore(filepath.Join(files.Dir, "missing", "puntajes.txt"))

	err := store.Save(models.NewScoreBoard())

	assert.Error(t, err)
}
