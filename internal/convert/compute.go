package convert

import "fmt"

// Result is the outcome of a computed operation. Number-base conversions
// yield a radix-encoded Text; every other operation yields a numeric Value
// and leaves Text empty.
type Result struct {
	Value float64
	Text  string
}

// String renders the result the way the ledger and result tables display it:
// radix strings verbatim, numeric values with fixed two decimals.
func (r Result) String() string {
	if r.Text != "" {
		return r.Text
	}
	return fmt.Sprintf("%.2f", r.Value)
}

// Compute executes op and returns its result, or one of the package's
// sentinel errors wrapped with the offending input. No state is shared
// between calls; a failed operation leaves nothing behind.
func Compute(op Operation) (Result, error) {
	switch op := op.(type) {
	case Temperature:
		return computeTemperature(op)
	case NumberBase:
		return computeNumberBase(op)
	case Logarithm:
		return computeLogarithm(op)
	case Currency:
		return computeCurrency(op)
	case Length:
		return computeLength(op)
	case Calculator:
		return computeCalculator(op)
	default:
		return Result{}, fmt.Errorf("%w: unsupported operation %T", ErrInvalidUnit, op)
	}
}

// letter normalizes a unit/mode selector to uppercase ASCII.
func letter(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
