package pkg_test

import (
	"math"
	"testing"

	"github.com/bharath-541/FinSight/internal/pkg"
)

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "no rounding needed", input: 10.25, want: 10.25},
		{name: "rounds up", input: 10.006, want: 10.01},
		{name: "rounds down", input: 10.004, want: 10},
		{name: "negative", input: -3.567, want: -3.57},
		{name: "zero", input: 0, want: 0},
		{name: "nan becomes zero", input: math.NaN(), want: 0},
		{name: "positive infinity becomes zero", input: math.Inf(1), want: 0},
		{name: "negative infinity becomes zero", input: math.Inf(-1), want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := pkg.Round2(tt.input); got != tt.want {
				t.Fatalf("Round2(%v) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}
