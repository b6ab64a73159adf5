package engine

import (
	"fmt"
	"math"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

// Normal returns a normally distributed value with the given mean and
// standard deviation, using the Box–Muller transform. Only the cosine
// branch is used; the companion deviate is discarded.
func (e *Engine) Normal(mean, stddev float64) (float64, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return 0, apperrors.New(apperrors.CodeInvalidBound, "mean and stddev must be finite numbers")
	}
	if stddev < 0 {
		return 0, apperrors.New(apperrors.CodeInvalidBound,
			fmt.Sprintf("stddev must be non-negative, got %g", stddev))
	}

	// u1 must be strictly positive for the logarithm.
	var u1 float64
	for u1 == 0 {
		var err error
		if u1, err = e.unit(); err != nil {
			return 0, err
		}
	}
	u2, err := e.unit()
	if err != nil {
		return 0, err
	}

	z0 := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z0*stddev, nil
}
