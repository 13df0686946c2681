// Package convert implements the conversion and calculation operations behind
// the interactive menu: temperature, number base, logarithm, currency, length,
// and a basic calculator.
//
// Operations form a closed set. Each variant carries its own typed inputs and
// is executed through Compute, which dispatches with an exhaustive type
// switch and fails fast with one of the package's sentinel errors.
//
// Currency conversions use a fixed rate snapshot, not live market data; see
// the rate table in currency.go.
package convert

// Operation is one conversion or calculation request. The set of variants is
// closed: Temperature, NumberBase, Logarithm, Currency, Length, Calculator.
type Operation interface {
	isOperation()
}

// Temperature converts Value between Celsius and Fahrenheit.
type Temperature struct {
	Value float64
	From  byte // 'C' or 'F', case-insensitive
	To    byte
}

// NumberBase re-encodes an integer Token from one radix to another.
type NumberBase struct {
	Token string
	From  byte // 'B', 'D', 'O' or 'H', case-insensitive
	To    byte
}

// Logarithm computes the logarithm of Value in the selected mode.
type Logarithm struct {
	Value float64
	Mode  byte // 'L' = log10, 'N' = natural, 'B' = log2, case-insensitive
}

// Currency converts Amount between two of the supported currency codes.
type Currency struct {
	Amount float64
	From   byte // 'I' = INR, 'U' = USD, 'E' = EUR, 'G' = GBP, case-insensitive
	To     byte
}

// Length converts Value between meters and feet.
type Length struct {
	Value float64
	From  byte // 'M' or 'F', case-insensitive
	To    byte
}

// Calculator evaluates one arithmetic or trigonometric step. B is read only
// by the binary operators; the trigonometric modes take A in degrees.
type Calculator struct {
	A  float64
	Op byte // '+', '-', '*', '/', '^', 'S', 'C' or 'T', letters case-insensitive
	B  float64
}

func (Temperature) isOperation() {}
func (NumberBase) isOperation()  {}
func (Logarithm) isOperation()   {}
func (Currency) isOperation()    {}
func (Length) isOperation()      {}
func (Calculator) isOperation()  {}
