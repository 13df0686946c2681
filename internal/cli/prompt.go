package cli

import (
	"math"
	"strconv"
	"strings"

	"unitdesk/internal/convert"
)

// readLine pulls the next input line. ok is false once input is exhausted.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// promptFloat keeps asking until the line parses as a finite number.
// Malformed raw text is re-prompted here, never surfaced as a typed error.
func (s *Session) promptFloat(label string) (float64, bool) {
	for {
		promptColor.Fprint(s.out, label)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			warnColor.Fprintln(s.out, "Enter a number, e.g. 36.6.")
			continue
		}
		return v, true
	}
}

// promptLetter keeps asking until a non-empty line arrives and returns its
// first character. Whether the letter names a known unit is decided by the
// compute layer, which reports it as a typed error.
func (s *Session) promptLetter(label string) (byte, bool) {
	for {
		promptColor.Fprint(s.out, label)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		t := strings.TrimSpace(line)
		if t == "" {
			warnColor.Fprintln(s.out, "Enter a letter.")
			continue
		}
		return t[0], true
	}
}

// promptToken keeps asking until a non-empty token arrives.
func (s *Session) promptToken(label string) (string, bool) {
	for {
		promptColor.Fprint(s.out, label)
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		t := strings.TrimSpace(line)
		if t == "" {
			warnColor.Fprintln(s.out, "Enter a value.")
			continue
		}
		return t, true
	}
}

func (s *Session) promptCalculator() (convert.Operation, bool) {
	a, ok := s.promptFloat("First number: ")
	if !ok {
		return nil, false
	}
	op, ok := s.promptLetter("Operation (+ - * / ^ S C T): ")
	if !ok {
		return nil, false
	}

	c := convert.Calculator{A: a, Op: op}
	switch op {
	case '+', '-', '*', '/', '^':
		b, ok := s.promptFloat("Second number: ")
		if !ok {
			return nil, false
		}
		c.B = b
	}
	return c, true
}

func (s *Session) promptTemperature() (convert.Operation, bool) {
	v, ok := s.promptFloat("Temperature value: ")
	if !ok {
		return nil, false
	}
	from, ok := s.promptLetter("From unit (C/F): ")
	if !ok {
		return nil, false
	}
	to, ok := s.promptLetter("To unit (C/F): ")
	if !ok {
		return nil, false
	}
	return convert.Temperature{Value: v, From: from, To: to}, true
}

func (s *Session) promptNumberBase() (convert.Operation, bool) {
	token, ok := s.promptToken("Number: ")
	if !ok {
		return nil, false
	}
	from, ok := s.promptLetter("From base (B/D/O/H): ")
	if !ok {
		return nil, false
	}
	to, ok := s.promptLetter("To base (B/D/O/H): ")
	if !ok {
		return nil, false
	}
	return convert.NumberBase{Token: token, From: from, To: to}, true
}

func (s *Session) promptLogarithm() (convert.Operation, bool) {
	v, ok := s.promptFloat("Value: ")
	if !ok {
		return nil, false
	}
	mode, ok := s.promptLetter("Mode (L=log10, N=ln, B=log2): ")
	if !ok {
		return nil, false
	}
	return convert.Logarithm{Value: v, Mode: mode}, true
}

func (s *Session) promptCurrency() (convert.Operation, bool) {
	amount, ok := s.promptFloat("Amount: ")
	if !ok {
		return nil, false
	}
	from, ok := s.promptLetter("From currency (I=INR, U=USD, E=EUR, G=GBP): ")
	if !ok {
		return nil, false
	}
	to, ok := s.promptLetter("To currency (I=INR, U=USD, E=EUR, G=GBP): ")
	if !ok {
		return nil, false
	}
	return convert.Currency{Amount: amount, From: from, To: to}, true
}

func (s *Session) promptLength() (convert.Operation, bool) {
	v, ok := s.promptFloat("Length value: ")
	if !ok {
		return nil, false
	}
	from, ok := s.promptLetter("From unit (M/F): ")
	if !ok {
		return nil, false
	}
	to, ok := s.promptLetter("To unit (M/F): ")
	if !ok {
		return nil, false
	}
	return convert.Length{Value: v, From: from, To: to}, true
}
