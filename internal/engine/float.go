package engine

import (
	"encoding/binary"
	"fmt"
	"math"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

// DefaultPrecision is the number of decimal digits kept by Float when the
// caller does not ask for another value.
const DefaultPrecision = 10

// Float returns a uniformly distributed float in [min, max], rounded to
// precision decimal digits.
//
// The draw uses the top 53 bits of an 8-byte block, so every representable
// step of the unit interval is equally likely. Rounding may land exactly on
// max; the result is clamped so it never leaves [min, max].
func (e *Engine) Float(min, max float64, precision int) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return 0, apperrors.New(apperrors.CodeInvalidBound, "min and max must be finite numbers")
	}
	if min > max {
		return 0, apperrors.New(apperrors.CodeInvalidBound,
			fmt.Sprintf("min (%g) must be less than or equal to max (%g)", min, max))
	}
	if precision < 0 {
		return 0, apperrors.New(apperrors.CodeInvalidBound,
			fmt.Sprintf("precision must be non-negative, got %d", precision))
	}

	u, err := e.unit()
	if err != nil {
		return 0, err
	}

	var f float64
	if span := max - min; math.IsInf(span, 0) {
		f = min*(1-u) + max*u
	} else {
		f = min + u*span
	}
	f = round(f, precision)
	return math.Min(math.Max(f, min), max), nil
}

// unit returns a uniform float in [0, 1) built from 53 random bits.
func (e *Engine) unit() (float64, error) {
	var buf [8]byte
	if err := e.fill(buf[:]); err != nil {
		return 0, err
	}
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53), nil
}

// round keeps precision decimal digits. Values too large to scale are
// returned unchanged since they carry no fractional digits anyway.
func round(f float64, precision int) float64 {
	scale := math.Pow10(precision)
	scaled := f * scale
	if math.IsInf(scale, 0) || math.IsInf(scaled, 0) {
		return f
	}
	return math.Round(scaled) / scale
}
