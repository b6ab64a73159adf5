package engine

import (
	"strings"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

// Character classes used by Password.
const (
	Uppercase        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	UppercaseSimilar = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	Lowercase        = "abcdefghijklmnopqrstuvwxyz"
	LowercaseSimilar = "abcdefghijkmnpqrstuvwxyz"
	Numbers          = "0123456789"
	NumbersSimilar   = "23456789"
	Symbols          = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	SymbolsSimilar   = "!@#$%^&*()_+-=[]{};:,.<>?"
)

// PasswordRequest describes the alphabet and length of a generated password.
type PasswordRequest struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	// ExcludeSimilar drops glyphs that are easy to confuse (I, O, l, o, 0, 1, |).
	ExcludeSimilar bool
}

// Charset returns the union of the enabled character classes.
func (r PasswordRequest) Charset() string {
	var b strings.Builder
	add := func(enabled bool, full, reduced string) {
		if !enabled {
			return
		}
		if r.ExcludeSimilar {
			b.WriteString(reduced)
			return
		}
		b.WriteString(full)
	}
	add(r.Uppercase, Uppercase, UppercaseSimilar)
	add(r.Lowercase, Lowercase, LowercaseSimilar)
	add(r.Numbers, Numbers, NumbersSimilar)
	add(r.Symbols, Symbols, SymbolsSimilar)
	return b.String()
}

// Password draws each position uniformly from the request's charset.
func (e *Engine) Password(req PasswordRequest) (string, error) {
	if err := e.checkCount("length", req.Length); err != nil {
		return "", err
	}
	charset := req.Charset()
	if charset == "" {
		return "", apperrors.New(apperrors.CodeEmptyAlphabet, "at least one character class must be enabled")
	}

	out := make([]byte, req.Length)
	for i := range out {
		j, err := e.index(len(charset))
		if err != nil {
			return "", err
		}
		out[i] = charset[j]
	}
	return string(out), nil
}
