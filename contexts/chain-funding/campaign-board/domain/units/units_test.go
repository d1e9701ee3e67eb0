package units

import (
	"errors"
	"math/big"
	"testing"
)

func TestFormatRendersExactDecimals(t *testing.T) {
	cases := []struct {
		name     string
		value    *big.Int
		decimals int
		want     string
	}{
		{name: "zero", value: big.NewInt(0), decimals: 18, want: "0.0"},
		{name: "small fraction keeps precision", value: big.NewInt(1000), decimals: 18, want: "0.000000000000001"},
		{name: "one whole unit", value: new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), decimals: 18, want: "1.0"},
		{name: "mixed whole and fraction", value: big.NewInt(1_500_000_000_000_000_000), decimals: 18, want: "1.5"},
		{name: "single smallest unit", value: big.NewInt(1), decimals: 18, want: "0.000000000000000001"},
		{name: "fewer decimals", value: big.NewInt(123450), decimals: 6, want: "0.12345"},
		{name: "zero decimals falls back to default", value: big.NewInt(1), decimals: 0, want: "0.000000000000000001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format(tc.value, tc.decimals)
			if err != nil {
				t.Fatalf("Format(%v, %d) returned error: %v", tc.value, tc.decimals, err)
			}
			if got != tc.want {
				t.Fatalf("Format(%v, %d) = %q, want %q", tc.value, tc.decimals, got, tc.want)
			}
		})
	}
}

func TestFormatRejectsNilAndNegative(t *testing.T) {
	if _, err := Format(nil, 18); !errors.Is(err, ErrAmountRequired) {
		t.Fatalf("expected ErrAmountRequired for nil value, got %v", err)
	}
	if _, err := Format(big.NewInt(-1), 18); !errors.Is(err, ErrAmountNegative) {
		t.Fatalf("expected ErrAmountNegative, got %v", err)
	}
}

func TestParseConvertsDecimalStrings(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		decimals int
		want     string
	}{
		{name: "whole units", raw: "1", decimals: 18, want: "1000000000000000000"},
		{name: "fraction", raw: "0.5", decimals: 18, want: "500000000000000000"},
		{name: "smallest unit", raw: "0.000000000000000001", decimals: 18, want: "1"},
		{name: "surrounding whitespace", raw: " 2.25 ", decimals: 2, want: "225"},
		{name: "zero", raw: "0", decimals: 18, want: "0"},
		{name: "leading dot", raw: ".5", decimals: 6, want: "500000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw, tc.decimals)
			if err != nil {
				t.Fatalf("Parse(%q, %d) returned error: %v", tc.raw, tc.decimals, err)
			}
			if got.String() != tc.want {
				t.Fatalf("Parse(%q, %d) = %s, want %s", tc.raw, tc.decimals, got, tc.want)
			}
		})
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want error
	}{
		{name: "empty", raw: "", want: ErrAmountRequired},
		{name: "whitespace only", raw: "   ", want: ErrAmountRequired},
		{name: "negative", raw: "-1", want: ErrAmountNegative},
		{name: "letters", raw: "abc", want: ErrMalformedAmount},
		{name: "two dots", raw: "1.2.3", want: ErrMalformedAmount},
		{name: "lone dot", raw: ".", want: ErrMalformedAmount},
		{name: "scientific notation", raw: "1e18", want: ErrMalformedAmount},
		{name: "too many fractional digits", raw: "0.0000000000000000001", want: ErrTooPrecise},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.raw, 18); !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tc.raw, err, tc.want)
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"1.0", "0.5", "1234.000000000000000001"} {
		value, err := Parse(raw, 18)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", raw, err)
		}
		rendered, err := Format(value, 18)
		if err != nil {
			t.Fatalf("Format after Parse(%q) returned error: %v", raw, err)
		}
		if rendered != raw {
			t.Fatalf("round trip of %q produced %q", raw, rendered)
		}
	}
}
