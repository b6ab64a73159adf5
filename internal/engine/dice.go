package engine

import (
	"fmt"
	"math"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

// Coin faces reported by FlipCoin.
const (
	Heads = "heads"
	Tails = "tails"
)

// CoinFlips captures the results of flipping a fair coin several times.
type CoinFlips struct {
	Flips []string
	Heads int
	Tails int
}

// DiceRoll captures the results of rolling several identical dice.
type DiceRoll struct {
	Sides int
	Rolls []int
	Sum   int
}

// FlipCoin flips a fair coin count times.
//
// # Faces
//
// Each flip is one Int(0, 1) draw; 0 is heads and 1 is tails. Flips are
// reported in the order they were drawn, and Heads+Tails always equals
// len(Flips).
func (e *Engine) FlipCoin(count int) (CoinFlips, error) {
	if err := e.checkCount("count", count); err != nil {
		return CoinFlips{}, err
	}

	result := CoinFlips{Flips: make([]string, count)}
	for i := range result.Flips {
		v, err := e.Int(0, 1)
		if err != nil {
			return CoinFlips{}, err
		}
		if v == 0 {
			result.Flips[i] = Heads
			result.Heads++
		} else {
			result.Flips[i] = Tails
			result.Tails++
		}
	}
	return result, nil
}

// RollDice rolls count dice with the given number of sides.
//
// # Ordering
//
// Rolls appear in the order they were drawn. Each roll is an independent
// Int(1, sides) draw.
//
// # Totals
//
// Sum is the sum of every value in Rolls, so count <= Sum <= count*sides.
//
// Constraints and errors
//
//   - sides must be at least 2, otherwise an INVALID_BOUND error is returned.
//   - sides*count must fit in an int so Sum cannot overflow, otherwise an
//     INVALID_BOUND error is returned.
//   - count must be between 1 and the engine's MaxCount, otherwise an
//     INVALID_COUNT error is returned.
//
// Example:
//
//	roll, err := e.RollDice(6, 3) // roll 3d6
//
// After a successful call, roll.Rolls holds three values in [1, 6] and
// roll.Sum their total.
func (e *Engine) RollDice(sides, count int) (DiceRoll, error) {
	if sides < 2 {
		return DiceRoll{}, apperrors.WithMetadata(apperrors.CodeInvalidBound,
			fmt.Sprintf("sides must be at least 2, got %d", sides),
			map[string]string{"field": "sides"})
	}
	if err := e.checkCount("count", count); err != nil {
		return DiceRoll{}, err
	}
	if sides > math.MaxInt/count {
		return DiceRoll{}, apperrors.WithMetadata(apperrors.CodeInvalidBound,
			fmt.Sprintf("sides (%d) times count (%d) must not exceed %d", sides, count, math.MaxInt),
			map[string]string{"field": "sides"})
	}

	roll := DiceRoll{Sides: sides, Rolls: make([]int, count)}
	for i := range roll.Rolls {
		v, err := e.Int(1, int64(sides))
		if err != nil {
			return DiceRoll{}, err
		}
		roll.Rolls[i] = int(v)
		roll.Sum += int(v)
	}
	return roll, nil
}
