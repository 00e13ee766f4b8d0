package repository

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hangman/models"

	log "github.com/sirupsen/logrus"
)

// ParseScores reads score store lines of the form nickname,wins,losses.
// Malformed rows are skipped; they never fail the parse.
func ParseScores(r io.Reader) (*models.ScoreBoard, error) {
	board := models.NewScoreBoard()

	err := readLines(r, func(lineNo int, line string) {
		if line == "" {
			return
		}

		record, err := parseScoreLine(line)
		if err == nil {
			err = board.Put(*record)
		}
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"line": lineNo,
				"raw":  line,
			}).Debug("Skipping corrupt score row")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read score store: %w", err)
	}

	return board, nil
}

func parseScoreLine(line string) (*models.ScoreRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return nil, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	nickname := strings.TrimSpace(fields[0])
	if nickname == "" {
		return nil, fmt.Errorf("empty nickname")
	}
	wins, err := parseCount(fields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid wins: %w", err)
	}
	losses, err := parseCount(fields[2])
	if err != nil {
		return nil, fmt.Errorf("invalid losses: %w", err)
	}

	return &models.ScoreRecord{Nickname: nickname, Wins: wins, Losses: losses}, nil
}

func parseCount(field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// SerializeScores writes one nickname,wins,losses line per record in insertion order
func SerializeScores(w io.Writer, board *models.ScoreBoard) error {
	bw := bufio.NewWriter(w)
	for _, record := range board.Records() {
		if _, err := fmt.Fprintf(bw, "%s,%d,%d\n", record.Nickname, record.Wins, record.Losses); err != nil {
			return fmt.Errorf("failed to write score for %s: %w", record.Nickname, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush score store: %w", err)
	}
	return nil
}
