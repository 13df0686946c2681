package convert

import "errors"

// Sentinel errors returned by Compute. Callers match them with errors.Is;
// the failure site wraps them with the offending input for display.
var (
	// ErrInvalidUnit reports an unrecognized unit, base, mode, or operator letter.
	ErrInvalidUnit = errors.New("unrecognized unit or mode")
	// ErrInvalidFormat reports a token with characters invalid for its source radix.
	ErrInvalidFormat = errors.New("malformed numeric token")
	// ErrOutOfRange reports a magnitude beyond the signed 64-bit integer range.
	ErrOutOfRange = errors.New("value exceeds the representable integer range")
	// ErrDomain reports input outside an operation's mathematical domain.
	ErrDomain = errors.New("input outside the mathematical domain")
	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUndefinedResult reports a computation with no defined value, such as tan 90°.
	ErrUndefinedResult = errors.New("result is mathematically undefined")
	// ErrUnsupportedConversion reports a currency pair with no fixed rate.
	ErrUnsupportedConversion = errors.New("no conversion defined between these units")
)
