package convert

import (
	"fmt"
	"strings"
)

// baseNames maps base letters to their display names in input descriptions.
var baseNames = map[byte]string{
	'B': "BIN",
	'D': "DEC",
	'O': "OCT",
	'H': "HEX",
}

// trigNames maps the trigonometric calculator modes to function names.
var trigNames = map[byte]string{
	'S': "sin",
	'C': "cos",
	'T': "tan",
}

// Describe renders the canonical input description recorded in the history
// ledger: "<input> <FROM> -> <TO>" for conversions, "<a> <op> <b>" or
// "<fn>(<a>)" for the calculator. Selectors are rendered in their normalized
// uppercase form; it is the caller's job to only describe operations that
// computed successfully.
func Describe(op Operation) string {
	switch op := op.(type) {
	case Temperature:
		return fmt.Sprintf("%.2f %s -> %s", op.Value, string(letter(op.From)), string(letter(op.To)))
	case NumberBase:
		return fmt.Sprintf("%s %s -> %s", strings.ToUpper(strings.TrimSpace(op.Token)), displayBase(op.From), displayBase(op.To))
	case Logarithm:
		switch letter(op.Mode) {
		case 'N':
			return fmt.Sprintf("ln(%.2f)", op.Value)
		case 'B':
			return fmt.Sprintf("log2(%.2f)", op.Value)
		default:
			return fmt.Sprintf("log10(%.2f)", op.Value)
		}
	case Currency:
		return fmt.Sprintf("%.2f %s -> %s", op.Amount, displayCurrency(op.From), displayCurrency(op.To))
	case Length:
		return fmt.Sprintf("%.2f %s -> %s", op.Value, string(letter(op.From)), string(letter(op.To)))
	case Calculator:
		norm := letter(op.Op)
		if fn, ok := trigNames[norm]; ok {
			return fmt.Sprintf("%s(%.2f)", fn, op.A)
		}
		return fmt.Sprintf("%.2f %s %.2f", op.A, string(norm), op.B)
	default:
		return fmt.Sprintf("%T", op)
	}
}

func displayBase(b byte) string {
	if name, ok := baseNames[letter(b)]; ok {
		return name
	}
	return string(letter(b))
}

func displayCurrency(c byte) string {
	if name, ok := currencyNames[letter(c)]; ok {
		return name
	}
	return string(letter(c))
}
