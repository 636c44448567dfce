// SPDX-License-Identifier: MPL-2.0

// Package convert turns validated numerals into their representations in
// the other supported bases. All conversions are routed through a *big.Int
// intermediate, so values of any length convert without precision loss.
//
// Two interchangeable Engine implementations exist: BigEngine delegates to
// math/big's own radix handling, ManualEngine does positional arithmetic
// digit by digit. The two must produce byte-identical output for every
// valid numeral; the conversion layer may silently pick either.
package convert

import (
	"math/big"

	"radix-cli/internal/numeral"
)

const (
	// EngineAuto lets SelectEngine pick the default implementation.
	EngineAuto EngineName = "auto"
	// EngineBig selects the math/big backed implementation.
	EngineBig EngineName = "big"
	// EngineManual selects the digit-by-digit implementation.
	EngineManual EngineName = "manual"
)

type (
	// EngineName identifies an Engine implementation in configuration.
	EngineName string

	// Engine converts between validated numerals and integer values.
	// Implementations must be stateless and safe for concurrent use.
	Engine interface {
		// Name returns the engine's configuration name.
		Name() EngineName

		// ToInteger decodes a validated numeral into its integer value.
		// The numeral's invariant makes decoding total: it always
		// succeeds and the result is non-negative.
		ToInteger(n numeral.Numeral) *big.Int

		// Render encodes a non-negative integer in the given base using
		// the base's canonical alphabet (uppercase hex). Zero renders
		// as "0".
		Render(v *big.Int, base numeral.Base) string
	}
)

// Valid reports whether the name identifies a known engine.
func (n EngineName) Valid() bool {
	return n == EngineAuto || n == EngineBig || n == EngineManual
}

// SelectEngine resolves an engine name to an implementation.
// EngineAuto (and the empty string) resolve to BigEngine, the preferred
// arbitrary-precision path; unknown names fall back the same way so a
// stale config value never breaks conversion.
func SelectEngine(name EngineName) Engine {
	if name == EngineManual {
		return ManualEngine{}
	}
	return BigEngine{}
}
