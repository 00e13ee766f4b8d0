package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"hangman/models"
	"hangman/service"

	log "github.com/sirupsen/logrus"
)

// Services are the application services the shell drives
type Services struct {
	Players service.PlayerService
	Games   service.GameService
	Stats   service.StatsService
}

// Options tune the shell
type Options struct {
	LeaderboardSize   int
	DefaultDifficulty models.Difficulty
}

// Shell is the interactive hangman menu
type Shell struct {
	scanner  *bufio.Scanner
	out      io.Writer
	styles   styles
	players  service.PlayerService
	games    service.GameService
	stats    service.StatsService
	opts     Options
	commands map[string]Command
	menu     []string // command names in menu order
	now      func() time.Time
	running  bool
}

// Command represents a menu entry
type Command struct {
	Handler     CommandHandler
	Description string
	Hidden      bool // reachable by name but not listed
}

// CommandHandler is a function that handles a menu command
type CommandHandler func(s *Shell, ctx context.Context) error

// New creates a shell reading from in and writing to out
func New(in io.Reader, out io.Writer, services Services, opts Options) *Shell {
	if opts.LeaderboardSize <= 0 {
		opts.LeaderboardSize = service.DefaultLeaderboardSize
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = models.DifficultyNormal
	}

	s := &Shell{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  newStyles(out),
		players: services.Players,
		games:   services.Games,
		stats:   services.Stats,
		opts:    opts,
		now:     time.Now,
		running: true,
	}
	s.initializeCommands()
	return s
}

func (s *Shell) initializeCommands() {
	s.commands = map[string]Command{
		"1": {
			Handler:     (*Shell).handlePlay,
			Description: "Play a round",
		},
		"2": {
			Handler:     (*Shell).handleLeaderboard,
			Description: fmt.Sprintf("Show top %d", s.opts.LeaderboardSize),
		},
		"3": {
			Handler:     (*Shell).handleExit,
			Description: "Exit",
		},
		"palabras": {
			Handler: (*Shell).handleWords,
			Hidden:  true,
		},
	}
	s.commands["words"] = s.commands["palabras"]
	s.commands["exit"] = s.commands["3"]
	s.commands["quit"] = s.commands["3"]
	s.menu = []string{"1", "2", "3"}
}

// Run shows the banner and serves the menu until the player exits, the input
// closes or ctx is cancelled
func (s *Shell) Run(ctx context.Context) error {
	s.printBanner()

	for s.running {
		select {
		case <-ctx.Done():
			s.println("")
			s.println("Goodbye!")
			return nil
		default:
		}

		s.printMenu()
		input, err := s.readLine(ctx, fmt.Sprintf("Choose an option [1-%d]: ", len(s.menu)))
		if err != nil {
			return s.stop(err)
		}
		if input == "" {
			continue
		}

		cmd, exists := s.commands[strings.ToLower(input)]
		if !exists {
			s.printError(fmt.Errorf("unknown option %q", input))
			continue
		}

		if err := cmd.Handler(s, ctx); err != nil {
			if errors.Is(err, models.ErrInputUnavailable) || errors.Is(err, context.Canceled) {
				return s.stop(err)
			}
			s.printError(err)
		}
	}

	return nil
}

// stop ends the loop cleanly on closed input or cancellation
func (s *Shell) stop(err error) error {
	if errors.Is(err, models.ErrInputUnavailable) || errors.Is(err, context.Canceled) {
		log.WithError(err).Debug("Shell stopped")
		s.println("")
		s.println("Goodbye!")
		return nil
	}
	return err
}

func (s *Shell) handleExit(ctx context.Context) error {
	s.running = false
	s.println("Thanks for playing. Goodbye!")
	return nil
}

// readLine prompts and returns the next trimmed line. A closed input yields ErrInputUnavailable.
func (s *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", models.ErrInputUnavailable, err)
		}
		return "", models.ErrInputUnavailable
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// printError displays an error message in red
func (s *Shell) printError(err error) {
	s.println(s.styles.errText.Render("Error: " + err.Error()))
}

// printWarning displays a warning message in yellow
func (s *Shell) printWarning(msg string) {
	s.println(s.styles.warning.Render(msg))
}
