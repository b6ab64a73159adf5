package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable the server reads. Struct
// tags name the key without it: `env:"HTTP_ADDR"` reads MCP_RANDOM_HTTP_ADDR.
const EnvPrefix = "MCP_RANDOM_"

// ParseEnv loads prefixed environment variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
