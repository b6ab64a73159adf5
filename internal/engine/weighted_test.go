package engine

import (
	"math"
	"testing"

	apperrors "github.com/edgarbjorntvedt/mcp-random/internal/platform/errors"
)

func TestWeightedChoiceSkipsZeroWeights(t *testing.T) {
	e := seeded(6)
	for i := 0; i < 200; i++ {
		v, err := WeightedChoice(e, []string{"A", "B"}, []float64{0, 1})
		if err != nil {
			t.Fatalf("WeightedChoice returned error: %v", err)
		}
		if v != "B" {
			t.Fatalf("WeightedChoice = %q, want B", v)
		}
	}
}

func TestWeightedChoiceBoundaryDraws(t *testing.T) {
	tests := []struct {
		name    string
		bytes   []byte
		weights []float64
		want    string
	}{
		{name: "lowest draw picks first positive", bytes: repeat(0x00, 8), weights: []float64{0, 2, 1}, want: "b"},
		{name: "highest draw stays in first", bytes: repeat(0xff, 8), weights: []float64{1, 0, 0}, want: "a"},
		{name: "highest draw skips trailing zero", bytes: repeat(0xff, 8), weights: []float64{1, 1, 0}, want: "b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := WeightedChoice(New(script(tc.bytes...)), []string{"a", "b", "c"}, tc.weights)
			if err != nil {
				t.Fatalf("WeightedChoice returned error: %v", err)
			}
			if v != tc.want {
				t.Fatalf("WeightedChoice = %q, want %q", v, tc.want)
			}
		})
	}
}

func TestWeightedChoiceProportions(t *testing.T) {
	const draws = 20000
	e := seeded(21)
	heavy := 0
	for i := 0; i < draws; i++ {
		v, err := WeightedChoice(e, []string{"light", "heavy"}, []float64{1, 3})
		if err != nil {
			t.Fatalf("WeightedChoice returned error: %v", err)
		}
		if v == "heavy" {
			heavy++
		}
	}
	if frac := float64(heavy) / draws; math.Abs(frac-0.75) > 0.02 {
		t.Fatalf("heavy fraction = %.3f, want about 0.75", frac)
	}
}

func TestWeightedChoiceRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		weights []float64
		code    apperrors.Code
	}{
		{name: "empty", options: []string{}, weights: []float64{}, code: apperrors.CodeInvalidShape},
		{name: "length mismatch", options: []string{"a", "b"}, weights: []float64{1}, code: apperrors.CodeInvalidShape},
		{name: "negative", options: []string{"a", "b"}, weights: []float64{1, -1}, code: apperrors.CodeInvalidWeight},
		{name: "all zero", options: []string{"a", "b"}, weights: []float64{0, 0}, code: apperrors.CodeInvalidWeight},
		{name: "nan", options: []string{"a"}, weights: []float64{math.NaN()}, code: apperrors.CodeInvalidWeight},
		{name: "overflowing sum", options: []string{"a", "b"}, weights: []float64{math.MaxFloat64, math.MaxFloat64}, code: apperrors.CodeInvalidWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := WeightedChoice(seeded(1), tc.options, tc.weights)
			requireCode(t, err, tc.code)
		})
	}
}
