// Package logging builds the zerolog logger shared by commands and services.
//
// Logs go to stderr by default: on the stdio transport stdout carries the
// MCP protocol stream and must not receive anything else.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Supported output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes how the logger writes.
type Config struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, fatal,
	// panic or disabled. Empty means info.
	Level string

	// Format is FormatJSON or FormatConsole. Empty means JSON.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger for cfg with timestamps enabled.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if name := strings.TrimSpace(cfg.Level); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatJSON:
	case FormatConsole:
		output = zerolog.ConsoleWriter{Out: output, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q is not supported", cfg.Format)
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}
