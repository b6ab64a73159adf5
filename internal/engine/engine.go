// Package engine turns secure entropy into unbiased values of a requested shape.
//
// Every integer-shaped draw (array index, dice face, alphabet position,
// Fisher–Yates swap target) goes through Int, which uses rejection sampling
// so no value in a range is favoured by modulo reduction. Floats are built
// from 53 uniform bits. The Engine keeps no state between calls beyond its
// entropy source, so one Engine may serve concurrent callers.
package engine

import (
	"fmt"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
	"github.com/edgarbjorntvedt/mcp-random/internal/random"
)

// DefaultMaxCount caps counts and lengths when no limit is configured.
const DefaultMaxCount = 10000

// Engine draws random values from an injected entropy source.
type Engine struct {
	source   random.Source
	maxCount int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxCount caps byte counts, password lengths, flips and dice per call.
// Non-positive values keep the default.
func WithMaxCount(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxCount = n
		}
	}
}

// New creates an Engine reading from source. A nil source means the
// system's secure source.
func New(source random.Source, opts ...Option) *Engine {
	if source == nil {
		source = random.System()
	}
	e := &Engine{source: source, maxCount: DefaultMaxCount}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxCount reports the configured per-call count limit.
func (e *Engine) MaxCount() int {
	return e.maxCount
}

// fill reads len(p) fresh bytes into p.
func (e *Engine) fill(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	b, err := random.Draw(e.source, len(p))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeEntropyUnavailable, "entropy source unavailable", err)
	}
	copy(p, b)
	return nil
}

// checkCount validates a count against [1, maxCount].
func (e *Engine) checkCount(name string, n int) error {
	if n < 1 {
		return apperrors.WithMetadata(apperrors.CodeInvalidCount,
			fmt.Sprintf("%s must be at least 1, got %d", name, n),
			map[string]string{"field": name})
	}
	if n > e.maxCount {
		return apperrors.WithMetadata(apperrors.CodeInvalidCount,
			fmt.Sprintf("%s must be at most %d, got %d", name, e.maxCount, n),
			map[string]string{"field": name})
	}
	return nil
}
