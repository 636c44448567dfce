// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"radix-cli/internal/numeral"
)

func TestSelectEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name EngineName
		want EngineName
	}{
		{name: EngineAuto, want: EngineBig},
		{name: EngineBig, want: EngineBig},
		{name: EngineManual, want: EngineManual},
		{name: "", want: EngineBig},
		{name: "bogus", want: EngineBig},
	}

	for _, tt := range tests {
		if got := SelectEngine(tt.name).Name(); got != tt.want {
			t.Errorf("SelectEngine(%q).Name() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestEngineName_Valid(t *testing.T) {
	t.Parallel()

	for _, name := range []EngineName{EngineAuto, EngineBig, EngineManual} {
		if !name.Valid() {
			t.Errorf("%q should be valid", name)
		}
	}
	if EngineName("bc").Valid() {
		t.Error("\"bc\" should not be valid")
	}
}

func TestManualEngine_RenderZero(t *testing.T) {
	t.Parallel()

	var eng ManualEngine
	for _, base := range []numeral.Base{numeral.Binary, numeral.Decimal, numeral.Hexadecimal} {
		if got := eng.Render(new(big.Int), base); got != "0" {
			t.Errorf("Render(0, %v) = %q, want \"0\"", base, got)
		}
	}
}

// TestEngines_Equivalence is the contract that allows the converter to pick
// either engine silently: for every valid input both must produce
// byte-identical digit strings in every target base.
func TestEngines_Equivalence(t *testing.T) {
	t.Parallel()

	corpus := []string{
		"0", "1", "2", "10", "31", "32", "42", "255", "256",
		"1023", "1024", "65535", "65536",
		"2147483647", "2147483648", "4294967295", "4294967296",
		"9223372036854775807", "9223372036854775808",
		"18446744073709551615", "18446744073709551616",
		strings.Repeat("9", 40),
		strings.Repeat("123456789", 12),
	}

	// A deterministic spread of random widths, well past 64 bits.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		v := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(8+rng.Intn(200))))
		corpus = append(corpus, v.String())
	}

	var (
		bigEng    BigEngine
		manualEng ManualEngine
		bases     = []numeral.Base{numeral.Binary, numeral.Decimal, numeral.Hexadecimal}
	)

	for _, dec := range corpus {
		n := numeral.MustParse(dec, numeral.Decimal)

		bigVal := bigEng.ToInteger(n)
		manualVal := manualEng.ToInteger(n)
		if bigVal.Cmp(manualVal) != 0 {
			t.Fatalf("ToInteger(%q): big=%s manual=%s", dec, bigVal, manualVal)
		}

		for _, base := range bases {
			bigOut := bigEng.Render(bigVal, base)
			manualOut := manualEng.Render(manualVal, base)
			if bigOut != manualOut {
				t.Errorf("Render(%q, %v): big=%q manual=%q", dec, base, bigOut, manualOut)
			}

			// Decoding what we rendered must return the original value,
			// for both engines and every base.
			rendered := numeral.MustParse(bigOut, base)
			if back := manualEng.ToInteger(rendered); back.Cmp(bigVal) != 0 {
				t.Errorf("manual round-trip via %v of %q: got %s", base, dec, back)
			}
		}
	}
}

func TestManualEngine_ToIntegerHexAlphabet(t *testing.T) {
	t.Parallel()

	var eng ManualEngine
	n := numeral.MustParse("DEADBEEF", numeral.Hexadecimal)
	if got := eng.ToInteger(n).String(); got != "3735928559" {
		t.Errorf("ToInteger(DEADBEEF) = %s, want 3735928559", got)
	}
}
