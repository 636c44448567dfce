// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"errors"
	"strings"
	"testing"

	"radix-cli/internal/numeral"
)

func newTestConverter(t *testing.T, wordBits int) *Converter {
	t.Helper()
	return New(SelectEngine(EngineAuto), wordBits)
}

func requireOutput(t *testing.T, res Result, base numeral.Base) string {
	t.Helper()
	out, ok := res.Output(base)
	if !ok {
		t.Fatalf("result carries no %v representation", base)
	}
	return out.Digits()
}

func TestConverter_FromDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantBin string
		wantHex string
	}{
		{name: "255", input: "255", wantBin: "11111111", wantHex: "FF"},
		{name: "zero", input: "0", wantBin: "0", wantHex: "0"},
		{name: "one", input: "1", wantBin: "1", wantHex: "1"},
		{name: "42", input: "42", wantBin: "101010", wantHex: "2A"},
		{name: "uint64 max", input: "18446744073709551615", wantBin: strings.Repeat("1", 64), wantHex: "FFFFFFFFFFFFFFFF"},
		{
			name:    "beyond 64 bits",
			input:   "340282366920938463463374607431768211456", // 2^128
			wantBin: "1" + strings.Repeat("0", 128),
			wantHex: "1" + strings.Repeat("0", 32),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := newTestConverter(t, 0)
			res, err := conv.FromDecimal(tt.input)
			if err != nil {
				t.Fatalf("FromDecimal(%q) error: %v", tt.input, err)
			}
			if got := requireOutput(t, res, numeral.Binary); got != tt.wantBin {
				t.Errorf("binary = %q, want %q", got, tt.wantBin)
			}
			if got := requireOutput(t, res, numeral.Hexadecimal); got != tt.wantHex {
				t.Errorf("hex = %q, want %q", got, tt.wantHex)
			}
			if res.Warning != nil {
				t.Errorf("unexpected overflow warning for decimal input: %+v", res.Warning)
			}
		})
	}
}

func TestConverter_FromBinary(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, 0)
	res, err := conv.FromBinary("101010")
	if err != nil {
		t.Fatalf("FromBinary error: %v", err)
	}
	if got := requireOutput(t, res, numeral.Decimal); got != "42" {
		t.Errorf("decimal = %q, want \"42\"", got)
	}
	if got := requireOutput(t, res, numeral.Hexadecimal); got != "2A" {
		t.Errorf("hex = %q, want \"2A\"", got)
	}
}

func TestConverter_FromHex(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, 0)

	res, err := conv.FromHex("2A")
	if err != nil {
		t.Fatalf("FromHex error: %v", err)
	}
	if got := requireOutput(t, res, numeral.Decimal); got != "42" {
		t.Errorf("decimal = %q, want \"42\"", got)
	}
	if got := requireOutput(t, res, numeral.Binary); got != "101010" {
		t.Errorf("binary = %q, want \"101010\"", got)
	}
}

func TestConverter_HexCaseInsensitive(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, 0)

	lower, err := conv.FromHex("2a")
	if err != nil {
		t.Fatalf("FromHex(\"2a\") error: %v", err)
	}
	upper, err := conv.FromHex("2A")
	if err != nil {
		t.Fatalf("FromHex(\"2A\") error: %v", err)
	}

	if lower.Input.Digits() != upper.Input.Digits() {
		t.Errorf("canonical input differs: %q vs %q", lower.Input.Digits(), upper.Input.Digits())
	}
	for _, base := range []numeral.Base{numeral.Binary, numeral.Decimal} {
		if requireOutput(t, lower, base) != requireOutput(t, upper, base) {
			t.Errorf("%v output differs between \"2a\" and \"2A\"", base)
		}
	}
}

func TestConverter_BinaryOverflowAdvisory(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, 32)
	res, err := conv.FromBinary(strings.Repeat("1", 32))
	if err != nil {
		t.Fatalf("FromBinary error: %v", err)
	}

	if res.Warning == nil {
		t.Fatal("expected overflow warning for 32 ones on a 32-bit word")
	}
	if res.Warning.BitLength != 32 {
		t.Errorf("Warning.BitLength = %d, want 32", res.Warning.BitLength)
	}

	// The advisory never degrades the result.
	if got := requireOutput(t, res, numeral.Decimal); got != "4294967295" {
		t.Errorf("decimal = %q, want \"4294967295\"", got)
	}
	if got := requireOutput(t, res, numeral.Hexadecimal); got != "FFFFFFFF" {
		t.Errorf("hex = %q, want \"FFFFFFFF\"", got)
	}
}

func TestConverter_NoAdvisoryOnWideWord(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, 64)
	res, err := conv.FromBinary(strings.Repeat("1", 32))
	if err != nil {
		t.Fatalf("FromBinary error: %v", err)
	}
	if res.Warning != nil {
		t.Errorf("unexpected warning on 64-bit word: %+v", res.Warning)
	}
}

func TestConverter_ValidationErrorsPropagate(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, 0)

	if _, err := conv.FromDecimal(""); !errors.Is(err, numeral.ErrEmptyInput) {
		t.Errorf("FromDecimal(\"\") error = %v, want ErrEmptyInput", err)
	}
	if _, err := conv.FromBinary("102"); !errors.Is(err, numeral.ErrInvalidDigit) {
		t.Errorf("FromBinary(\"102\") error = %v, want ErrInvalidDigit", err)
	}
	if _, err := conv.FromHex("xyz"); !errors.Is(err, numeral.ErrInvalidDigit) {
		t.Errorf("FromHex(\"xyz\") error = %v, want ErrInvalidDigit", err)
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"0", "1", "2", "7", "42", "255", "256", "65535",
		"2147483647", "2147483648", "4294967295",
		"9223372036854775807", "18446744073709551615",
		"340282366920938463463374607431768211455",
		"123456789012345678901234567890123456789012345678901234567890",
	}

	conv := newTestConverter(t, 0)
	for _, dec := range inputs {
		res, err := conv.FromDecimal(dec)
		if err != nil {
			t.Fatalf("FromDecimal(%q) error: %v", dec, err)
		}

		bin := requireOutput(t, res, numeral.Binary)
		back, err := conv.FromBinary(bin)
		if err != nil {
			t.Fatalf("FromBinary(%q) error: %v", bin, err)
		}
		if got := requireOutput(t, back, numeral.Decimal); got != dec {
			t.Errorf("decimal -> binary -> decimal: got %q, want %q", got, dec)
		}

		hex := requireOutput(t, res, numeral.Hexadecimal)
		back, err = conv.FromHex(hex)
		if err != nil {
			t.Fatalf("FromHex(%q) error: %v", hex, err)
		}
		if got := requireOutput(t, back, numeral.Decimal); got != dec {
			t.Errorf("decimal -> hex -> decimal: got %q, want %q", got, dec)
		}
	}
}

func TestResult_OutputForSourceBase(t *testing.T) {
	t.Parallel()

	conv := newTestConverter(t, 0)
	res, err := conv.FromDecimal("42")
	if err != nil {
		t.Fatalf("FromDecimal error: %v", err)
	}

	out, ok := res.Output(numeral.Decimal)
	if !ok {
		t.Fatal("Output(Decimal) not found for decimal input")
	}
	if out.Digits() != "42" {
		t.Errorf("Output(Decimal) = %q, want \"42\"", out.Digits())
	}
}
