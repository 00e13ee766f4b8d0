package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"hangman/config"
	"hangman/events"
	"hangman/models"
	"hangman/repository"
	"hangman/service"
	"hangman/shell"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application. args are the command line
// arguments after the program name.
func Run(ctx context.Context, args []string) error {
	cfg := config.Get()

	logCloser, err := config.SetupLogging(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	return run(ctx, cfg, args, os.Stdin, os.Stdout)
}

// app holds the wired services
type app struct {
	bank    *models.WordBank
	players service.PlayerService
	games   service.GameService
	stats   service.StatsService
}

func run(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out io.Writer) error {
	log.WithFields(log.Fields{
		"environment": cfg.Environment,
		"words_file":  cfg.WordsFile,
		"scores_file": cfg.ScoresFile,
	}).Info("Starting hangman")

	a, err := wire(cfg)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		sh := shell.New(in, out, shell.Services{
			Players: a.players,
			Games:   a.games,
			Stats:   a.stats,
		}, shell.Options{
			LeaderboardSize:   cfg.LeaderboardSize,
			DefaultDifficulty: cfg.Difficulty(),
		})
		return sh.Run(ctx)
	}

	switch args[0] {
	case "words", "palabras":
		shell.WriteWords(out, a.bank)
		return nil
	case "top":
		limit := cfg.LeaderboardSize
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid leaderboard size %q", args[1])
			}
			limit = n
		}
		entries, err := a.stats.GetLeaderboard(ctx, limit)
		if err != nil {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}
		shell.WriteLeaderboard(out, entries, limit)
		return nil
	default:
		return fmt.Errorf("unknown command %q (usage: hangman [words | top [n]])", args[0])
	}
}

func wire(cfg *config.Config) (*app, error) {
	// Load the word bank
	var (
		bank *models.WordBank
		err  error
	)
	if cfg.SeedWords {
		bank, err = repository.LoadOrSeedWordBank(cfg.WordsFile)
	} else {
		bank, err = repository.LoadWordBank(cfg.WordsFile)
	}
	if errors.Is(err, models.ErrNoWords) {
		return nil, fmt.Errorf("no words to play with: add words to %s: %w", cfg.WordsFile, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load words (set HANGMAN_SEED_WORDS=true to create a sample file): %w", err)
	}

	// Initialize event bus
	eventBus := events.NewBus()
	events.SubscribeLogging(eventBus)

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(repository.NewScoreStore(cfg.ScoresFile), eventBus)

	// Initialize services
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	log.Debug("Services initialized successfully")

	return &app{
		bank:    bank,
		players: service.NewPlayerService(uowFactory),
		games: service.NewGameService(bank, uowFactory, eventBus, rng, service.GameConfig{
			DefaultDifficulty: cfg.Difficulty(),
		}),
		stats: service.NewStatsService(uowFactory),
	}, nil
}
