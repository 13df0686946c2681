package convert

import "fmt"

func isTemperatureUnit(u byte) bool {
	return u == 'C' || u == 'F'
}

func computeTemperature(op Temperature) (Result, error) {
	from, to := letter(op.From), letter(op.To)
	if !isTemperatureUnit(from) {
		return Result{}, fmt.Errorf("%w: temperature unit %q (want C or F)", ErrInvalidUnit, string(op.From))
	}
	if !isTemperatureUnit(to) {
		return Result{}, fmt.Errorf("%w: temperature unit %q (want C or F)", ErrInvalidUnit, string(op.To))
	}

	switch {
	case from == to:
		return Result{Value: op.Value}, nil
	case from == 'C':
		return Result{Value: op.Value*9/5 + 32}, nil
	default: // F -> C
		return Result{Value: (op.Value - 32) * 5 / 9}, nil
	}
}
