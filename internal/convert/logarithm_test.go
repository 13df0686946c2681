package convert

import (
	"errors"
	"math"
	"testing"
)

func TestComputeLogarithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   Logarithm
		want float64
	}{
		{name: "log10 of 1 is 0", op: Logarithm{Value: 1, Mode: 'L'}, want: 0},
		{name: "ln of 1 is 0", op: Logarithm{Value: 1, Mode: 'N'}, want: 0},
		{name: "log2 of 1 is 0", op: Logarithm{Value: 1, Mode: 'B'}, want: 0},
		{name: "log2 of 8", op: Logarithm{Value: 8, Mode: 'B'}, want: 3},
		{name: "log10 of 1000", op: Logarithm{Value: 1000, Mode: 'L'}, want: 3},
		{name: "ln of e", op: Logarithm{Value: math.E, Mode: 'N'}, want: 1},
		{name: "lowercase mode", op: Logarithm{Value: 8, Mode: 'b'}, want: 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Compute(tc.op)
			if err != nil {
				t.Fatalf("Compute(%+v): %v", tc.op, err)
			}
			if !approxEqual(got.Value, tc.want, 1e-12) {
				t.Fatalf("Compute(%+v) = %v; want %v", tc.op, got.Value, tc.want)
			}
		})
	}
}

func TestComputeLogarithm_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   Logarithm
		want error
	}{
		{name: "zero is outside the domain", op: Logarithm{Value: 0, Mode: 'L'}, want: ErrDomain},
		{name: "negative is outside the domain", op: Logarithm{Value: -5, Mode: 'N'}, want: ErrDomain},
		{name: "NaN is outside the domain", op: Logarithm{Value: math.NaN(), Mode: 'B'}, want: ErrDomain},
		{name: "unknown mode", op: Logarithm{Value: 8, Mode: 'X'}, want: ErrInvalidUnit},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compute(tc.op)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Compute(%+v) error = %v; want %v", tc.op, err, tc.want)
			}
		})
	}
}
