package convert

import "fmt"

type currencyPair struct {
	from, to byte
}

// exchangeRates is a fixed snapshot, not live market data. Exactly these six
// directed pairs are defined; everything else except same-currency identity
// is rejected as unsupported.
var exchangeRates = map[currencyPair]float64{
	{'I', 'U'}: 0.012, // INR -> USD
	{'U', 'I'}: 83.33, // USD -> INR
	{'U', 'E'}: 0.92,  // USD -> EUR
	{'U', 'G'}: 0.79,  // USD -> GBP
	{'E', 'U'}: 1.09,  // EUR -> USD
	{'G', 'U'}: 1.27,  // GBP -> USD
}

// currencyNames maps the menu letters to ISO codes for display.
var currencyNames = map[byte]string{
	'I': "INR",
	'U': "USD",
	'E': "EUR",
	'G': "GBP",
}

func computeCurrency(op Currency) (Result, error) {
	from, to := letter(op.From), letter(op.To)
	if _, ok := currencyNames[from]; !ok {
		return Result{}, fmt.Errorf("%w: currency %q (want I, U, E or G)", ErrInvalidUnit, string(op.From))
	}
	if _, ok := currencyNames[to]; !ok {
		return Result{}, fmt.Errorf("%w: currency %q (want I, U, E or G)", ErrInvalidUnit, string(op.To))
	}

	if from == to {
		return Result{Value: op.Amount}, nil
	}
	rate, ok := exchangeRates[currencyPair{from, to}]
	if !ok {
		return Result{}, fmt.Errorf("%w: no fixed rate from %s to %s", ErrUnsupportedConversion, currencyNames[from], currencyNames[to])
	}
	return Result{Value: op.Amount * rate}, nil
}
