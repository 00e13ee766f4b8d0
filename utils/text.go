package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace, composes the string to NFC and lower-cases it.
// Words and guesses both go through here so "Ñ", "ñ" and "ñ" compare equal.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}

// IsLetter reports whether r needs to be guessed by the player.
func IsLetter(r rune) bool {
	return unicode.IsLetter(r)
}
