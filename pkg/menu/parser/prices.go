package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultCurrency is appended to formatted prices.
const DefaultCurrency = "€"

// Fallback selects what a price normalization returns when the raw value
// is not numeric.
type Fallback int

const (
	// FallbackZero formats the value as zero ("0.00€"). Used by price tables.
	FallbackZero Fallback = iota
	// FallbackRaw returns the raw text unchanged. Used by offer cards.
	FallbackRaw
)

// Prices formats raw cell values as currency strings.
type Prices struct {
	// Symbol is the trailing currency symbol.
	Symbol string
}

// DefaultPrices returns a formatter using DefaultCurrency.
func DefaultPrices() Prices {
	return Prices{Symbol: DefaultCurrency}
}

// Format formats raw with two fractional digits and the currency symbol.
// A raw value that already ends with the symbol is reformatted, so Format
// is idempotent on its own output.
func (p Prices) Format(raw string) (string, error) {
	s := raw
	if p.Symbol != "" {
		s = strings.TrimSuffix(s, p.Symbol)
	}
	v, err := parseDecimal(s)
	if err != nil {
		return "", &ValueFormatError{Raw: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", &ValueFormatError{Raw: raw, Err: ErrNotFinite}
	}
	return strconv.FormatFloat(v, 'f', 2, 64) + p.Symbol, nil
}

// Normalize formats raw, applying fb when it is not numeric. The returned
// string is always usable; a non-nil error is a *ValueFormatError that
// reports the fallback was taken.
func (p Prices) Normalize(raw string, fb Fallback) (string, error) {
	price, err := p.Format(raw)
	if err == nil {
		return price, nil
	}
	switch fb {
	case FallbackZero:
		return strconv.FormatFloat(0, 'f', 2, 64) + p.Symbol, err
	default:
		return raw, err
	}
}

// parseDecimal parses a plain decimal number. Base prefixes and digit
// separators, which strconv accepts but spreadsheets never produce, are
// rejected.
func parseDecimal(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && strings.ContainsRune("xXbBoO", rune(digits[1])) {
		return 0, fmt.Errorf("%w: %q", ErrNotDecimal, s)
	}
	if strings.ContainsRune(s, '_') {
		return 0, fmt.Errorf("%w: %q", ErrNotDecimal, s)
	}
	return strconv.ParseFloat(s, 64)
}
