package units

// Conversions between smallest-unit integer amounts and decimal strings.
// Amounts stay integral end to end; floats never touch authoritative values.

import (
	"errors"
	"math/big"
	"strings"
)

const DefaultDecimals = 18

var (
	ErrAmountRequired  = errors.New("amount is required")
	ErrAmountNegative  = errors.New("amount must not be negative")
	ErrMalformedAmount = errors.New("amount is not a valid decimal")
	ErrTooPrecise      = errors.New("amount has more fractional digits than the unit supports")
)

// Format renders a smallest-unit amount as an exact decimal string, e.g.
// 1000 at 18 decimals becomes "0.000000000000001". Trailing fractional
// zeros are trimmed but at least one fractional digit is kept.
func Format(value *big.Int, decimals int) (string, error) {
	if value == nil {
		return "", ErrAmountRequired
	}
	if value.Sign() < 0 {
		return "", ErrAmountNegative
	}
	if decimals <= 0 {
		decimals = DefaultDecimals
	}

	digits := value.String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	split := len(digits) - decimals
	whole := digits[:split]
	frac := strings.TrimRight(digits[split:], "0")
	if frac == "" {
		frac = "0"
	}
	return whole + "." + frac, nil
}

// Parse converts a non-negative decimal string into a smallest-unit amount.
// It rejects negatives, malformed input, and fractions finer than the unit.
func Parse(raw string, decimals int) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrAmountRequired
	}
	if strings.HasPrefix(raw, "-") {
		return nil, ErrAmountNegative
	}
	if decimals <= 0 {
		decimals = DefaultDecimals
	}

	whole, frac := raw, ""
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		whole, frac = raw[:dot], raw[dot+1:]
	}
	if whole == "" && frac == "" {
		return nil, ErrMalformedAmount
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return nil, ErrMalformedAmount
	}
	if len(frac) > decimals {
		return nil, ErrTooPrecise
	}

	frac += strings.Repeat("0", decimals-len(frac))
	value, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, ErrMalformedAmount
	}
	return value, nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
