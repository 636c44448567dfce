// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"math/big"
	"strings"

	"radix-cli/internal/numeral"
)

// BigEngine converts via math/big's radix support (Int.SetString and
// Int.Text). It is the preferred path: the original tool delegated to an
// external arbitrary-precision calculator, and math/big plays that role
// in-process.
type BigEngine struct{}

// Name implements Engine.
func (BigEngine) Name() EngineName { return EngineBig }

// ToInteger implements Engine.
func (BigEngine) ToInteger(n numeral.Numeral) *big.Int {
	v, ok := new(big.Int).SetString(n.Digits(), int(n.Base()))
	if !ok {
		// Unreachable for a Numeral that holds its invariant.
		panic("convert: numeral digits rejected by math/big: " + n.String())
	}
	return v
}

// Render implements Engine.
func (BigEngine) Render(v *big.Int, base numeral.Base) string {
	text := v.Text(int(base))
	if base == numeral.Hexadecimal {
		text = strings.ToUpper(text)
	}
	return text
}
