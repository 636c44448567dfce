// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"math/big"

	"radix-cli/internal/numeral"
)

// ManualEngine converts with explicit positional arithmetic: decoding by
// weight accumulation, encoding by repeated division. It exists as the
// dependency-free counterpart to BigEngine's radix handling and must stay
// byte-identical with it (TestEngines_Equivalence guards this).
//
// big.Int is used only as the integer type, never for radix parsing or
// formatting.
type ManualEngine struct{}

// Name implements Engine.
func (ManualEngine) Name() EngineName { return EngineManual }

// ToInteger implements Engine. For each digit, left to right:
// acc = acc*base + digit.
func (ManualEngine) ToInteger(n numeral.Numeral) *big.Int {
	var (
		acc   = new(big.Int)
		base  = big.NewInt(int64(n.Base()))
		digit = new(big.Int)
	)
	for _, r := range n.Digits() {
		v := n.Base().DigitValue(r)
		if v < 0 {
			// Unreachable for a Numeral that holds its invariant.
			panic("convert: digit outside alphabet: " + n.String())
		}
		acc.Mul(acc, base)
		acc.Add(acc, digit.SetInt64(int64(v)))
	}
	return acc
}

// Render implements Engine. Repeatedly takes v mod base as the next least
// significant digit and divides v by base until it reaches zero; a zero
// value short-circuits to "0".
func (ManualEngine) Render(v *big.Int, base numeral.Base) string {
	if v.Sign() == 0 {
		return "0"
	}

	var (
		rest  = new(big.Int).Set(v)
		radix = big.NewInt(int64(base))
		rem   = new(big.Int)
		buf   = make([]byte, 0, rest.BitLen())
	)
	for rest.Sign() > 0 {
		rest.QuoRem(rest, radix, rem)
		buf = append(buf, numeral.HexAlphabet[rem.Int64()])
	}

	// Digits were produced least significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
