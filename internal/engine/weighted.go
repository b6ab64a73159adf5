package engine

import (
	"fmt"
	"math"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

// WeightedChoice picks one option with probability proportional to its
// weight. Options with zero weight are never returned.
func WeightedChoice[T any](e *Engine, options []T, weights []float64) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, apperrors.New(apperrors.CodeInvalidShape, "options must not be empty")
	}
	if len(options) != len(weights) {
		return zero, apperrors.New(apperrors.CodeInvalidShape,
			fmt.Sprintf("options and weights must have the same length (%d != %d)", len(options), len(weights)))
	}

	var total float64
	last := -1
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return zero, apperrors.WithMetadata(apperrors.CodeInvalidWeight,
				fmt.Sprintf("weight at index %d must be a finite non-negative number", i),
				map[string]string{"index": fmt.Sprint(i)})
		}
		if w > 0 {
			last = i
		}
		total += w
	}
	if last < 0 {
		return zero, apperrors.New(apperrors.CodeInvalidWeight, "weights must sum to a positive number")
	}
	if math.IsInf(total, 0) {
		return zero, apperrors.New(apperrors.CodeInvalidWeight, "weights sum overflows")
	}

	u, err := e.unit()
	if err != nil {
		return zero, err
	}
	r := u * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if w > 0 && r < cumulative {
			return options[i], nil
		}
	}
	// Rounding can leave r at or just above the final sum.
	return options[last], nil
}
