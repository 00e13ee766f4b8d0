package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hangman/models"
	"hangman/service"

	log "github.com/sirupsen/logrus"
)

const (
	hintCommand    = "?"
	abandonCommand = "!"

	emptyCategoryWarning = "That category has no words. Pick another one."
)

func (s *Shell) handlePlay(ctx context.Context) error {
	nickname, err := s.askNickname(ctx)
	if err != nil {
		return err
	}

	category, err := s.askCategory(ctx)
	if err != nil {
		return err
	}

	difficulty, err := s.askDifficulty(ctx)
	if err != nil {
		return err
	}

	for {
		session, err := s.games.StartGame(ctx, nickname, category, difficulty)
		if errors.Is(err, models.ErrEmptyCategory) {
			s.printWarning(emptyCategoryWarning)
			if category, err = s.askCategory(ctx); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		return s.playRound(ctx, session)
	}
}

// askNickname re-prompts until a new valid nickname is registered
func (s *Shell) askNickname(ctx context.Context) (string, error) {
	for {
		input, err := s.readLine(ctx, "Enter your nickname (no commas): ")
		if err != nil {
			return "", err
		}

		record, err := s.players.RegisterPlayer(ctx, input)
		switch {
		case errors.Is(err, models.ErrInvalidNickname):
			s.printError(err)
			continue
		case errors.Is(err, models.ErrDuplicateNickname):
			s.printWarning("That nickname is taken. Choose another one.")
			continue
		case err != nil:
			return "", err
		}

		s.printf("Welcome, %s!\n", record.Nickname)
		return record.Nickname, nil
	}
}

// askCategory lists the categories plus a random entry and returns the chosen name.
// Categories without words are refused and the player is asked again.
func (s *Shell) askCategory(ctx context.Context) (string, error) {
	categories := s.games.Categories()
	if len(categories) == 0 {
		return "", models.ErrNoWords
	}

	s.println("")
	s.println(s.styles.header.Render("Categories"))
	for i, c := range categories {
		s.printf("  %d. %s %s\n", i+1, c.Name, s.styles.subtle.Render(fmt.Sprintf("(%d words)", c.WordCount)))
	}
	randomIndex := len(categories) + 1
	s.printf("  %d. Random (any category)\n", randomIndex)

	for {
		input, err := s.readLine(ctx, fmt.Sprintf("Select a category [1-%d]: ", randomIndex))
		if err != nil {
			return "", err
		}
		if input == "" {
			s.printError(errors.New("empty selection, enter a number"))
			continue
		}

		idx, err := strconv.Atoi(input)
		if err != nil {
			// Accept the category name itself
			if c, ok := findCategory(categories, input); ok {
				if c.WordCount == 0 {
					s.printWarning(emptyCategoryWarning)
					continue
				}
				return c.Name, nil
			}
			if strings.EqualFold(input, service.RandomCategory) {
				return service.RandomCategory, nil
			}
			s.printError(errors.New("invalid input, enter a number"))
			continue
		}

		switch {
		case idx >= 1 && idx <= len(categories):
			if categories[idx-1].WordCount == 0 {
				s.printWarning(emptyCategoryWarning)
				continue
			}
			return categories[idx-1].Name, nil
		case idx == randomIndex:
			return service.RandomCategory, nil
		default:
			s.printError(errors.New("number out of range"))
		}
	}
}

func findCategory(categories []models.CategorySummary, name string) (models.CategorySummary, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return models.CategorySummary{}, false
}

// askDifficulty offers the difficulties; an empty answer keeps the default
func (s *Shell) askDifficulty(ctx context.Context) (models.Difficulty, error) {
	difficulties := models.Difficulties()

	s.println("")
	s.println(s.styles.header.Render("Difficulty"))
	for i, d := range difficulties {
		marker := ""
		if d == s.opts.DefaultDifficulty {
			marker = s.styles.subtle.Render(" (default)")
		}
		s.printf("  %d. %s - %d attempts%s\n", i+1, d, d.Attempts(), marker)
	}

	for {
		input, err := s.readLine(ctx, fmt.Sprintf("Select a difficulty [1-%d, Enter for %s]: ", len(difficulties), s.opts.DefaultDifficulty))
		if err != nil {
			return "", err
		}
		if input == "" {
			return s.opts.DefaultDifficulty, nil
		}
		if idx, err := strconv.Atoi(input); err == nil {
			if idx >= 1 && idx <= len(difficulties) {
				return difficulties[idx-1], nil
			}
			s.printError(errors.New("number out of range"))
			continue
		}
		d, err := models.ParseDifficulty(input)
		if err != nil {
			s.printError(err)
			continue
		}
		return d, nil
	}
}

// playRound runs the guess loop and records the result
func (s *Shell) playRound(ctx context.Context, session *models.GameSession) error {
	s.println("")
	s.printf("Category: %s | %d letters | ? for a hint, ! to give up\n", session.Category, len([]rune(session.Word())))

	for !session.IsFinished() {
		s.printBoard(session)

		input, err := s.readLine(ctx, "Guess a letter: ")
		if err != nil {
			session.Abandon()
			if _, finishErr := s.games.FinishGame(ctx, session); finishErr != nil {
				log.WithError(finishErr).Warn("Failed to close abandoned game")
			}
			return err
		}

		switch input {
		case hintCommand:
			letter, ok := s.games.Hint(session)
			if !ok {
				s.printWarning("No letters left to reveal.")
				continue
			}
			s.println(s.styles.warning.Render(fmt.Sprintf("Hint: %c (cost one attempt)", letter)))
		case abandonCommand:
			session.Abandon()
		default:
			outcome, err := session.Guess(input)
			if errors.Is(err, models.ErrInvalidGuess) {
				s.printError(err)
				continue
			}
			if err != nil {
				return err
			}
			switch outcome {
			case models.GuessOutcomeCorrect:
				s.println(s.styles.correct.Render("Correct letter."))
			case models.GuessOutcomeIncorrect:
				s.println(s.styles.wrong.Render("Wrong letter."))
			}
		}
	}

	return s.finishRound(ctx, session)
}

func (s *Shell) finishRound(ctx context.Context, session *models.GameSession) error {
	s.printBoard(session)

	switch session.Status() {
	case models.GameStatusWon:
		s.println(s.styles.correct.Render(fmt.Sprintf("Congratulations %s! You guessed the word: %s", session.Nickname, session.Word())))
		s.printf("Speed bonus: %d points (just for fun, not saved)\n", session.Bonus(s.now()))
	case models.GameStatusLost:
		s.println(s.styles.wrong.Render(fmt.Sprintf("You lost. The word was: %s", session.Word())))
	case models.GameStatusAbandoned:
		s.printWarning(fmt.Sprintf("You gave up. The word was: %s", session.Word()))
	}

	record, err := s.games.FinishGame(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	if record == nil {
		return nil
	}
	s.printf("%s now has %d wins and %d losses.\n", record.Nickname, record.Wins, record.Losses)

	stats, err := s.stats.GetPlayerStats(ctx, record.Nickname)
	if err != nil {
		log.WithError(err).WithField("nickname", record.Nickname).Warn("Failed to load player rank")
		return nil
	}
	s.printf("Rank: #%d of %d players\n", stats.Rank, stats.Total)
	return nil
}
