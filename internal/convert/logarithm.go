package convert

import (
	"fmt"
	"math"
)

func computeLogarithm(op Logarithm) (Result, error) {
	mode := letter(op.Mode)
	switch mode {
	case 'L', 'N', 'B':
	default:
		return Result{}, fmt.Errorf("%w: log mode %q (want L, N or B)", ErrInvalidUnit, string(op.Mode))
	}
	if !(op.Value > 0) {
		return Result{}, fmt.Errorf("%w: logarithm requires a value > 0, got %g", ErrDomain, op.Value)
	}

	switch mode {
	case 'L':
		return Result{Value: math.Log10(op.Value)}, nil
	case 'N':
		return Result{Value: math.Log(op.Value)}, nil
	default: // B
		return Result{Value: math.Log2(op.Value)}, nil
	}
}
