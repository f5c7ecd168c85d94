package edn

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/edn-lang/edn/value"
)

var numCmpOpts = []cmp.Option{
	cmp.Comparer(value.Equal),
	cmpopts.EquateEmpty(),
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want value.Value
	}{
		{"zero", "0", value.NewIntegerInt64(0)},
		{"decimal", "123", value.NewIntegerInt64(123)},
		{"negative decimal", "-42", value.NewIntegerInt64(-42)},
		{"leading zero is octal", "017", value.NewIntegerInt64(15)},
		{"hex", "0x1F", value.NewIntegerInt64(31)},
		{"radix 36", "36rZ", value.NewIntegerInt64(35)},
		{"bignum suffix", "9N", value.NewIntegerBig(big.NewInt(9))},
		{"ratio", "1/2", value.NewRatio(big.NewInt(1), big.NewInt(2))},
		{"negative ratio", "-3/4", value.NewRatio(big.NewInt(-3), big.NewInt(4))},
		{"float", "1.5", value.Float(1.5)},
		{"float exponent", "1e10", value.Float(1e10)},
		{"float trailing dot", "1.", value.Float(1.0)},
		{"bigdecimal", "1.5M", value.NewBigDecimal(big.NewFloat(1.5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNumber(tt.text)
			if err != nil {
				t.Fatalf("parseNumber(%q) error: %v", tt.text, err)
			}
			if diff := cmp.Diff(tt.want, got, numCmpOpts...); diff != "" {
				t.Errorf("parseNumber(%q) diff (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseNumberErrors(t *testing.T) {
	tests := []string{"1/0", "1.2.3", "--1", "0x"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if _, err := parseNumber(text); err == nil {
				t.Errorf("parseNumber(%q) = nil error, want an error", text)
			}
		})
	}
}
