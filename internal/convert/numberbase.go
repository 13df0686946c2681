package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// int64 bounds as exact float64 values. 2^63 itself is already out of range,
// -2^63 is the smallest representable value.
const (
	maxInt64Float = 9.223372036854775808e18
	minInt64Float = -9.223372036854775808e18
)

// radixOf maps a base letter to its radix: B(inary), O(ctal), D(ecimal), H(ex).
func radixOf(base byte) (int, bool) {
	switch letter(base) {
	case 'B':
		return 2, true
	case 'O':
		return 8, true
	case 'D':
		return 10, true
	case 'H':
		return 16, true
	}
	return 0, false
}

func computeNumberBase(op NumberBase) (Result, error) {
	from, ok := radixOf(op.From)
	if !ok {
		return Result{}, fmt.Errorf("%w: base %q (want B, D, O or H)", ErrInvalidUnit, string(op.From))
	}
	to, ok := radixOf(op.To)
	if !ok {
		return Result{}, fmt.Errorf("%w: base %q (want B, D, O or H)", ErrInvalidUnit, string(op.To))
	}

	n, err := parseInRadix(op.Token, from)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: encodeInRadix(n, to)}, nil
}

// parseInRadix interprets token as a signed integer in the given radix.
// Decimal additionally accepts a general numeric literal; the value is
// truncated toward zero, so a fractional part parses but is discarded.
func parseInRadix(token string, radix int) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, fmt.Errorf("%w: empty token", ErrInvalidFormat)
	}

	n, err := strconv.ParseInt(token, radix, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrOutOfRange, token)
	}
	if radix == 10 {
		if f, ferr := strconv.ParseFloat(token, 64); ferr == nil {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, fmt.Errorf("%w: %q is not a finite number", ErrInvalidFormat, token)
			}
			t := math.Trunc(f)
			if t >= maxInt64Float || t < minInt64Float {
				return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrOutOfRange, token)
			}
			return int64(t), nil
		} else if errors.Is(ferr, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrOutOfRange, token)
		}
	}
	return 0, fmt.Errorf("%w: %q is not a base-%d integer", ErrInvalidFormat, token, radix)
}

// encodeInRadix renders n most-significant digit first with uppercase digits
// 0-9A-F, "0" for zero. Negative values keep an explicit minus-sign prefix in
// every radix, so encode and decode round-trip.
func encodeInRadix(n int64, radix int) string {
	s := strconv.FormatInt(n, radix)
	if radix == 10 {
		return s
	}
	return strings.ToUpper(s)
}
