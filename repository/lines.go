package repository

import (
	"bufio"
	"errors"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// maxLineLength bounds a single line of a data file; longer lines are skipped
const maxLineLength = 64 * 1024

// readLines calls fn with every trimmed line of r and its 1-based number.
// Lines longer than maxLineLength are logged and skipped instead of failing the read.
func readLines(r io.Reader, fn func(lineNo int, line string)) error {
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			if len(line) > maxLineLength {
				log.WithFields(log.Fields{
					"line":   lineNo,
					"length": len(line),
				}).Debug("Skipping oversized line")
			} else {
				fn(lineNo, strings.TrimSpace(line))
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
