// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"math/big"

	"radix-cli/internal/numeral"
)

type (
	// Result carries a conversion's input numeral, its representations in
	// the two other bases, and an optional overflow advisory. Results are
	// values: once built they are only read.
	Result struct {
		// Input is the validated source numeral.
		Input numeral.Numeral
		// Value is the decoded integer value of Input.
		Value *big.Int
		// Outputs holds the input rendered in the two non-source bases,
		// in ascending base order.
		Outputs []numeral.Numeral
		// Warning is the overflow advisory, or nil. Advisory only:
		// Outputs are correct regardless.
		Warning *OverflowWarning
	}

	// Converter binds an Engine and the native word width used by the
	// overflow advisor. The zero value is not usable; construct with New.
	Converter struct {
		engine   Engine
		wordBits int
	}
)

// New returns a Converter backed by the given engine. wordBits is the
// host's native integer width for advisory purposes; pass 0 to use the
// actual host width.
func New(engine Engine, wordBits int) *Converter {
	if wordBits <= 0 {
		wordBits = NativeWordBits()
	}
	return &Converter{engine: engine, wordBits: wordBits}
}

// Engine returns the engine the converter is bound to.
func (c *Converter) Engine() Engine { return c.engine }

// FromDecimal parses text as a decimal numeral and converts it to binary
// and hexadecimal.
func (c *Converter) FromDecimal(text string) (Result, error) {
	return c.convert(text, numeral.Decimal)
}

// FromBinary parses text as a binary numeral and converts it to decimal
// and hexadecimal. Binary inputs longer than 31 bits carry an overflow
// advisory on 32-bit hosts; the conversion still proceeds.
func (c *Converter) FromBinary(text string) (Result, error) {
	return c.convert(text, numeral.Binary)
}

// FromHex parses text as a hexadecimal numeral and converts it to decimal
// and binary.
func (c *Converter) FromHex(text string) (Result, error) {
	return c.convert(text, numeral.Hexadecimal)
}

// From dispatches on the source base.
func (c *Converter) From(text string, base numeral.Base) (Result, error) {
	return c.convert(text, base)
}

func (c *Converter) convert(text string, base numeral.Base) (Result, error) {
	in, err := numeral.Parse(text, base)
	if err != nil {
		return Result{}, err
	}

	value := c.engine.ToInteger(in)

	outputs := make([]numeral.Numeral, 0, 2)
	for _, target := range []numeral.Base{numeral.Binary, numeral.Decimal, numeral.Hexadecimal} {
		if target == base {
			continue
		}
		rendered, err := numeral.Parse(c.engine.Render(value, target), target)
		if err != nil {
			// Engines render canonical alphabets; a parse failure here
			// is an engine bug, not bad input.
			return Result{}, err
		}
		outputs = append(outputs, rendered)
	}

	res := Result{Input: in, Value: value, Outputs: outputs}
	if base == numeral.Binary {
		res.Warning = CheckOverflow(in.Digits(), c.wordBits)
	}
	return res, nil
}

// Output returns the result's representation in the given base, falling
// back to the input when base is the source base. The second return is
// false only for a base the result does not carry.
func (r Result) Output(base numeral.Base) (numeral.Numeral, bool) {
	if r.Input.Base() == base {
		return r.Input, true
	}
	for _, out := range r.Outputs {
		if out.Base() == base {
			return out, true
		}
	}
	return numeral.Numeral{}, false
}
