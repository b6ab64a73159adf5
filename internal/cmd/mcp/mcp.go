// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"

	"github.com/edgarbjorntvedt/mcp-random/internal/engine"
	entrypoint "github.com/edgarbjorntvedt/mcp-random/internal/platform/cmd"
	"github.com/edgarbjorntvedt/mcp-random/internal/platform/logging"
	"github.com/edgarbjorntvedt/mcp-random/internal/services/mcp/service"
)

// Config holds MCP command configuration. Environment keys carry the
// MCP_RANDOM_ prefix (config.EnvPrefix).
type Config struct {
	Transport    string   `env:"TRANSPORT"     envDefault:"stdio"`
	HTTPAddr     string   `env:"HTTP_ADDR"     envDefault:"localhost:8081"`
	AllowedHosts []string `env:"ALLOWED_HOSTS" envSeparator:","`
	AuthToken    string   `env:"AUTH_TOKEN"`
	MaxCount     int      `env:"MAX_COUNT"     envDefault:"10000"`
	LogLevel     string   `env:"LOG_LEVEL"     envDefault:"info"`
	LogFormat    string   `env:"LOG_FORMAT"    envDefault:"json"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.IntVar(&cfg.MaxCount, "max-count", cfg.MaxCount, "Upper bound for counts and lengths")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json or console")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.MaxCount < 1 {
		return Config{}, fmt.Errorf("max count must be at least 1, got %d", cfg.MaxCount)
	}
	return cfg, nil
}

// Run starts the MCP randomness server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	maxCount := cfg.MaxCount
	if maxCount < 1 {
		maxCount = engine.DefaultMaxCount
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, entrypoint.RunOptions{Logger: logger, Version: service.Version}, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{
			Transport:    service.TransportKind(cfg.Transport),
			HTTPAddr:     cfg.HTTPAddr,
			AllowedHosts: cfg.AllowedHosts,
			AuthToken:    cfg.AuthToken,
			MaxCount:     maxCount,
			Logger:       logger.With().Str("service", entrypoint.ServiceMCP).Logger(),
		})
	})
}
