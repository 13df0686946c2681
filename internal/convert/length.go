package convert

import "fmt"

// Fixed conversion factors between the two supported length units.
const (
	metersToFeet = 3.28084
	feetToMeters = 0.3048
)

func isLengthUnit(u byte) bool {
	return u == 'M' || u == 'F'
}

func computeLength(op Length) (Result, error) {
	from, to := letter(op.From), letter(op.To)
	if !isLengthUnit(from) {
		return Result{}, fmt.Errorf("%w: length unit %q (want M or F)", ErrInvalidUnit, string(op.From))
	}
	if !isLengthUnit(to) {
		return Result{}, fmt.Errorf("%w: length unit %q (want M or F)", ErrInvalidUnit, string(op.To))
	}

	switch {
	case from == to:
		return Result{Value: op.Value}, nil
	case from == 'M':
		return Result{Value: op.Value * metersToFeet}, nil
	default: // F -> M
		return Result{Value: op.Value * feetToMeters}, nil
	}
}
