package convert

import (
	"errors"
	"testing"
)

func TestComputeTemperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		op   Temperature
		want float64
	}{
		{name: "boiling point C to F", op: Temperature{Value: 100, From: 'C', To: 'F'}, want: 212},
		{name: "freezing point C to F", op: Temperature{Value: 0, From: 'C', To: 'F'}, want: 32},
		{name: "F to C", op: Temperature{Value: 212, From: 'F', To: 'C'}, want: 100},
		{name: "scales cross at -40", op: Temperature{Value: -40, From: 'C', To: 'F'}, want: -40},
		{name: "same unit is identity", op: Temperature{Value: 36.6, From: 'C', To: 'C'}, want: 36.6},
		{name: "lowercase units accepted", op: Temperature{Value: 100, From: 'c', To: 'f'}, want: 212},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Compute(tc.op)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if !approxEqual(got.Value, tc.want, 1e-9) {
				t.Fatalf("Compute(%+v) = %v; want %v", tc.op, got.Value, tc.want)
			}
		})
	}
}

func TestComputeTemperature_InvalidUnit(t *testing.T) {
	t.Parallel()

	for _, op := range []Temperature{
		{Value: 1, From: 'K', To: 'C'},
		{Value: 1, From: 'C', To: 'X'},
	} {
		_, err := Compute(op)
		if !errors.Is(err, ErrInvalidUnit) {
			t.Fatalf("Compute(%+v) error = %v; want ErrInvalidUnit", op, err)
		}
	}
}

func TestComputeTemperature_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-273.15, -40, 0, 36.6, 100, 451, 12345.678} {
		f, err := Compute(Temperature{Value: v, From: 'C', To: 'F'})
		if err != nil {
			t.Fatalf("C->F(%v): %v", v, err)
		}
		back, err := Compute(Temperature{Value: f.Value, From: 'F', To: 'C'})
		if err != nil {
			t.Fatalf("F->C(%v): %v", f.Value, err)
		}
		if !approxEqual(back.Value, v, 1e-9) {
			t.Fatalf("round trip %v -> %v -> %v; want original", v, f.Value, back.Value)
		}
	}
}
