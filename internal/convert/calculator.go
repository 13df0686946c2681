package convert

import (
	"fmt"
	"math"
)

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// tangentUndefined reports whether deg lands on an odd multiple of 90, where
// cosine is zero and the tangent has no value. The check is exact on the
// degree input rather than on the floating-point cosine.
func tangentUndefined(deg float64) bool {
	m := math.Mod(deg, 180)
	if m < 0 {
		m += 180
	}
	return m == 90
}

func computeCalculator(op Calculator) (Result, error) {
	switch letter(op.Op) {
	case '+':
		return Result{Value: op.A + op.B}, nil
	case '-':
		return Result{Value: op.A - op.B}, nil
	case '*':
		return Result{Value: op.A * op.B}, nil
	case '/':
		if op.B == 0 {
			return Result{}, fmt.Errorf("%w: %g / %g", ErrDivisionByZero, op.A, op.B)
		}
		return Result{Value: op.A / op.B}, nil
	case '^':
		return Result{Value: math.Pow(op.A, op.B)}, nil
	case 'S':
		return Result{Value: math.Sin(degreesToRadians(op.A))}, nil
	case 'C':
		return Result{Value: math.Cos(degreesToRadians(op.A))}, nil
	case 'T':
		if tangentUndefined(op.A) {
			return Result{}, fmt.Errorf("%w: tangent of %g° (cosine is zero)", ErrUndefinedResult, op.A)
		}
		return Result{Value: math.Tan(degreesToRadians(op.A))}, nil
	default:
		return Result{}, fmt.Errorf("%w: operation %q (want + - * / ^ S C or T)", ErrInvalidUnit, string(op.Op))
	}
}
