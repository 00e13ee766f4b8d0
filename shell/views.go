package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"hangman/models"
)

var gallows = []string{
	"  +---+\n      |\n      |\n      |\n     ===",
	"  +---+\n  O   |\n      |\n      |\n     ===",
	"  +---+\n  O   |\n  |   |\n      |\n     ===",
	"  +---+\n  O   |\n /|   |\n      |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n      |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n /    |\n     ===",
	"  +---+\n  O   |\n /|\\  |\n / \\  |\n     ===",
}

func (s *Shell) printBanner() {
	s.println(s.styles.title.Render("=== HANGMAN ==="))
	s.println(s.styles.subtle.Render("Guess the word one letter at a time."))
}

func (s *Shell) printMenu() {
	s.println("")
	s.println(s.styles.header.Render("Menu"))
	for _, name := range s.menu {
		s.printf("%s. %s\n", name, s.commands[name].Description)
	}
}

// printBoard shows the gallows, the masked word and the remaining attempts
func (s *Shell) printBoard(session *models.GameSession) {
	s.println("")
	s.println(gallowsStage(session))
	s.println(s.styles.board.Render(session.Render()))

	misses := "none"
	if missed := session.IncorrectSet(); len(missed) > 0 {
		letters := make([]string, 0, len(missed))
		for _, r := range missed {
			letters = append(letters, string(r))
		}
		misses = strings.Join(letters, ", ")
	}
	s.printf("Attempts left: %d | Misses: %s\n", session.AttemptsLeft(), misses)
}

// gallowsStage scales the attempts used onto the drawing
func gallowsStage(session *models.GameSession) string {
	if session.MaxAttempts <= 0 {
		return gallows[len(gallows)-1]
	}
	used := session.MaxAttempts - session.AttemptsLeft()
	stage := used * (len(gallows) - 1) / session.MaxAttempts
	stage = max(0, min(stage, len(gallows)-1))
	return gallows[stage]
}

func (s *Shell) handleLeaderboard(ctx context.Context) error {
	entries, err := s.stats.GetLeaderboard(ctx, s.opts.LeaderboardSize)
	if err != nil {
		return err
	}
	s.println("")
	WriteLeaderboard(s.out, entries, s.opts.LeaderboardSize)
	return nil
}

func (s *Shell) handleWords(ctx context.Context) error {
	s.println("")
	WriteWords(s.out, s.games.WordBank())
	return nil
}

// WriteLeaderboard prints ranked entries as a table
func WriteLeaderboard(out io.Writer, entries []*models.LeaderboardEntry, size int) {
	st := newStyles(out)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return
	}

	width := len("Player")
	for _, e := range entries {
		width = max(width, len([]rune(e.Nickname)))
	}

	fmt.Fprintln(out, st.title.Render(fmt.Sprintf("===== TOP %d PLAYERS =====", size)))
	fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%3s | %-*s | %4s | %6s | %5s", "Pos", width, "Player", "Wins", "Losses", "Win %")))
	for _, e := range entries {
		pad := width - len([]rune(e.Nickname))
		fmt.Fprintf(out, "%3d | %s%s | %4d | %6d | %5.1f\n", e.Rank, e.Nickname, strings.Repeat(" ", pad), e.Wins, e.Losses, e.WinRate)
	}
}

// WriteWords prints every category and its words
func WriteWords(out io.Writer, bank *models.WordBank) {
	st := newStyles(out)
	for _, category := range bank.Categories() {
		words := bank.Words(category)
		fmt.Fprintf(out, "%s %s\n", st.header.Render(category), st.subtle.Render(fmt.Sprintf("(%d)", len(words))))
		if len(words) > 0 {
			fmt.Fprintf(out, "  %s\n", strings.Join(words, ", "))
		}
	}
}
