package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"hangman/models"
	"hangman/utils"

	log "github.com/sirupsen/logrus"
)

// categoryMarkers open a new category when a line starts with one of them
var categoryMarkers = []string{"categoria:", "category:"}

// ParseWordBank reads a word source: category marker lines followed by
// comma-separated word lines. Blank lines are ignored and words listed before
// any marker land in the fallback category.
func ParseWordBank(r io.Reader) (*models.WordBank, error) {
	bank := models.NewWordBank()
	current := ""

	err := readLines(r, func(lineNo int, line string) {
		if line == "" {
			return
		}

		if name, ok := categoryName(line); ok {
			current = name
			bank.AddCategory(current)
			return
		}

		if current == "" {
			current = models.FallbackCategory
			log.WithFields(log.Fields{
				"line":     lineNo,
				"category": current,
			}).Debug("Words found before any category marker")
		}

		for _, item := range strings.Split(line, ",") {
			word := utils.Normalize(item)
			if word == "" {
				continue
			}
			bank.AddWords(current, word)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read word source: %w", err)
	}

	return bank, nil
}

func categoryName(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, marker := range categoryMarkers {
		if strings.HasPrefix(lower, marker) {
			_, rest, _ := strings.Cut(line, ":")
			name := utils.Normalize(rest)
			if name == "" {
				name = models.FallbackCategory
			}
			return name, true
		}
	}
	return "", false
}

// LoadWordBank parses the word source at path. A missing or unreadable file
// yields ErrDataUnavailable, and a source without a single word yields ErrNoWords.
func LoadWordBank(path string) (*models.WordBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrDataUnavailable, err)
	}
	defer f.Close()

	bank, err := ParseWordBank(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrDataUnavailable, err)
	}
	if bank.TotalWords() == 0 {
		return nil, fmt.Errorf("%w in %s", models.ErrNoWords, path)
	}

	log.WithFields(log.Fields{
		"path":       path,
		"categories": len(bank.Categories()),
		"words":      bank.TotalWords(),
	}).Info("Loaded word bank")

	return bank, nil
}

// LoadOrSeedWordBank loads the word source and, when it does not exist, writes
// the built-in seed words to path and returns them instead.
func LoadOrSeedWordBank(path string) (*models.WordBank, error) {
	bank, err := LoadWordBank(path)
	if err == nil {
		return bank, nil
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		return nil, err
	}

	bank = DefaultWordBank()
	log.WithField("path", path).Warn("Word source missing, writing seed words")

	f, createErr := os.Create(path)
	if createErr != nil {
		// The seed is still playable even if it cannot be written out
		log.WithError(createErr).WithField("path", path).Warn("Failed to write seed word source")
		return bank, nil
	}
	defer f.Close()

	if writeErr := WriteWordBank(f, bank); writeErr != nil {
		log.WithError(writeErr).WithField("path", path).Warn("Failed to write seed word source")
	}
	return bank, nil
}

// WriteWordBank writes bank in the word source format
func WriteWordBank(w io.Writer, bank *models.WordBank) error {
	bw := bufio.NewWriter(w)
	for i, category := range bank.Categories() {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return fmt.Errorf("failed to write word source: %w", err)
			}
		}
		if _, err := fmt.Fprintf(bw, "categoria:%s\n", category); err != nil {
			return fmt.Errorf("failed to write word source: %w", err)
		}
		if words := bank.Words(category); len(words) > 0 {
			if _, err := fmt.Fprintln(bw, strings.Join(words, ",")); err != nil {
				return fmt.Errorf("failed to write word source: %w", err)
			}
		}
	}
	return bw.Flush()
}

// DefaultWordBank returns the seed words used when no word source exists
func DefaultWordBank() *models.WordBank {
	bank := models.NewWordBank()
	bank.AddWords("frutas", "manzana", "pera", "banano", "fresa", "sandia", "mandarina", "durazno", "guayaba")
	bank.AddWords("animales", "perro", "gato", "elefante", "jirafa", "murcielago", "tortuga", "delfin", "pinguino")
	bank.AddWords("paises", "colombia", "argentina", "mexico", "peru", "espana", "costa rica", "el salvador")
	bank.AddWords("colores", "rojo", "azul", "verde", "amarillo", "morado", "naranja", "turquesa")
	return bank
}
