package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"hangman/models"

	"github.com/stretchr/testify/require"
)

// TestFiles holds the data file locations of an isolated test workspace
type TestFiles struct {
	Dir        string
	WordsPath  string
	ScoresPath string
}

// SetupTestFiles creates an empty workspace under t.TempDir(). Neither file exists yet.
func SetupTestFiles(t *testing.T) *TestFiles {
	t.Helper()
	dir := t.TempDir()
	return &TestFiles{
		Dir:        dir,
		WordsPath:  filepath.Join(dir, "palabras.txt"),
		ScoresPath: filepath.Join(dir, "puntajes.txt"),
	}
}

// WriteWords writes content as the word source
func (f *TestFiles) WriteWords(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.WordsPath, []byte(content), 0o644))
}

// WriteScores writes content as the score store
func (f *TestFiles) WriteScores(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(f.ScoresPath, []byte(content), 0o644))
}

// ReadScores returns the raw score store content
func (f *TestFiles) ReadScores(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(f.ScoresPath)
	require.NoError(t, err)
	return string(data)
}

// CreateTestScoreBoard creates a scoreboard holding records in the given order.
// It panics on an invalid record.
func CreateTestScoreBoard(records ...models.ScoreRecord) *models.ScoreBoard {
	board := models.NewScoreBoard()
	for _, record := range records {
		if err := board.Put(record); err != nil {
			panic(err)
		}
	}
	return board
}

// CreateTestWordBank creates a small bank with one playable and one empty category
func CreateTestWordBank() *models.WordBank {
	bank := models.NewWordBank()
	bank.AddWords("frutas", "manzana", "pera")
	bank.AddCategory("vacia")
	return bank
}
