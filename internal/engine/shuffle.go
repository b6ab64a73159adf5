package engine

import (
	"fmt"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

// Permutation returns a uniformly random permutation of [0, n) built with
// the Fisher–Yates algorithm: for i from n-1 down to 1, swap position i with
// a uniform j in [0, i].
func (e *Engine) Permutation(n int) ([]int, error) {
	if n < 0 {
		return nil, apperrors.New(apperrors.CodeInvalidCount,
			fmt.Sprintf("permutation size must be non-negative, got %d", n))
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j, err := e.index(i + 1)
		if err != nil {
			return nil, err
		}
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm, nil
}

// Shuffle returns a new slice holding items in a uniformly random order.
// The input slice is not modified. The result is never nil.
func Shuffle[T any](e *Engine, items []T) ([]T, error) {
	perm, err := e.Permutation(len(items))
	if err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	for i, j := range perm {
		out[i] = items[j]
	}
	return out, nil
}

// Sample returns count distinct positions of items, in shuffled order.
func Sample[T any](e *Engine, items []T, count int) ([]T, error) {
	if count < 0 || count > len(items) {
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidCount,
			fmt.Sprintf("count must be between 0 and %d, got %d", len(items), count),
			map[string]string{"field": "count"})
	}
	shuffled, err := Shuffle(e, items)
	if err != nil {
		return nil, err
	}
	return shuffled[:count], nil
}

// Choice returns one uniformly chosen element of items.
func Choice[T any](e *Engine, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, apperrors.New(apperrors.CodeInvalidShape, "items must not be empty")
	}
	i, err := e.index(len(items))
	if err != nil {
		return zero, err
	}
	return items[i], nil
}
