package engine

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

// Int returns a uniformly distributed integer in [min, max].
//
// # Algorithm
//
// The range size is computed in uint64 so the full int64 span is allowed.
// The smallest number of bytes whose value space covers the range is drawn
// and read big-endian. Values at or above the largest multiple of the range
// that fits in that space are rejected and redrawn; accepted values are
// reduced modulo the range. Every outcome therefore maps to the same number
// of accepted byte patterns.
//
// A single-value range (min == max) returns min without drawing entropy.
func (e *Engine) Int(min, max int64) (int64, error) {
	if min > max {
		return 0, apperrors.New(apperrors.CodeInvalidBound,
			fmt.Sprintf("min (%d) must be less than or equal to max (%d)", min, max))
	}
	span := uint64(max) - uint64(min) + 1 // wraps to 0 for the full int64 span
	v, err := e.below(span)
	if err != nil {
		return 0, err
	}
	return int64(uint64(min) + v), nil
}

// index returns a uniform index in [0, n). n must be positive.
func (e *Engine) index(n int) (int, error) {
	v, err := e.below(uint64(n))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// below returns a uniform value in [0, span). A span of 0 stands for 2^64.
func (e *Engine) below(span uint64) (uint64, error) {
	if span == 1 {
		return 0, nil
	}

	width := 8
	if span != 0 {
		width = (bits.Len64(span-1) + 7) / 8
	}

	// threshold is the exclusive upper bound on accepted draws; 0 accepts all.
	var threshold uint64
	switch {
	case span == 0:
	case width < 8:
		space := uint64(1) << (8 * width)
		threshold = space - space%span
	default:
		// 2^64 mod span, computed without overflowing.
		if rem := -span % span; rem != 0 {
			threshold = -rem
		}
	}

	var buf [8]byte
	for {
		if err := e.fill(buf[8-width:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf[:])
		if threshold != 0 && v >= threshold {
			continue
		}
		if span == 0 {
			return v, nil
		}
		return v % span, nil
	}
}
