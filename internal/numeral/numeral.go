// SPDX-License-Identifier: MPL-2.0

// Package numeral defines validated digit strings tagged with their base.
// A Numeral is the only value the conversion layer accepts: construction
// through Parse guarantees the digits are non-empty and drawn entirely
// from the base's canonical alphabet.
package numeral

import (
	"strings"
)

const (
	// Binary is base 2 with alphabet "01".
	Binary Base = 2
	// Decimal is base 10 with alphabet "0123456789".
	Decimal Base = 10
	// Hexadecimal is base 16 with alphabet "0123456789ABCDEF".
	// Lowercase digits are accepted on input and canonicalized to uppercase.
	Hexadecimal Base = 16
)

// HexAlphabet is the canonical uppercase hexadecimal digit set.
// Digit value i is HexAlphabet[i].
const HexAlphabet = "0123456789ABCDEF"

type (
	// Base identifies one of the three supported positional bases.
	Base int

	// Numeral is an immutable validated digit string in a given base.
	// The zero value is not valid; obtain Numerals through Parse.
	//
	// Invariant: Digits is non-empty and every rune belongs to the
	// base's canonical alphabet (uppercase for hexadecimal).
	Numeral struct {
		base   Base
		digits string
	}
)

// String returns a human-readable name for the base.
func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the three supported bases.
func (b Base) Valid() bool {
	return b == Binary || b == Decimal || b == Hexadecimal
}

// DigitValue returns the numeric value of r in base b, or -1 when r is
// not part of the base's alphabet. Hexadecimal accepts both cases.
func (b Base) DigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		v := int(r - '0')
		if v < int(b) {
			return v
		}
	case b == Hexadecimal && r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	case b == Hexadecimal && r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	}
	return -1
}

// Parse validates text as a numeral in the given base.
//
// Surrounding whitespace is trimmed first. An input that is empty after
// trimming fails with kind ErrEmptyInput; a single rune outside the base's
// alphabet fails the whole input with kind ErrInvalidDigit (no partial
// acceptance). Hexadecimal input is canonicalized to uppercase.
func Parse(text string, base Base) (Numeral, error) {
	if !base.Valid() {
		return Numeral{}, &UnsupportedBaseError{Base: base}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Numeral{}, &ParseError{Kind: ErrEmptyInput, Base: base}
	}

	for i, r := range trimmed {
		if base.DigitValue(r) < 0 {
			return Numeral{}, &ParseError{
				Kind:     ErrInvalidDigit,
				Base:     base,
				Digit:    r,
				Position: i,
			}
		}
	}

	if base == Hexadecimal {
		trimmed = strings.ToUpper(trimmed)
	}

	return Numeral{base: base, digits: trimmed}, nil
}

// MustParse is Parse for static inputs known to be valid; it panics on error.
// Intended for tests and package-internal constants.
func MustParse(text string, base Base) Numeral {
	n, err := Parse(text, base)
	if err != nil {
		panic(err)
	}
	return n
}

// Base returns the numeral's base.
func (n Numeral) Base() Base { return n.base }

// Digits returns the canonical digit string.
func (n Numeral) Digits() string { return n.digits }

// String formats the numeral as "<digits> (<base>)".
func (n Numeral) String() string {
	return n.digits + " (" + n.base.String() + ")"
}

// IsZero reports whether the numeral denotes the value zero,
// i.e. consists solely of '0' digits.
func (n Numeral) IsZero() bool {
	return strings.Trim(n.digits, "0") == ""
}

// BitLength returns the number of significant digits for binary numerals
// and 0 for every other base. The overflow advisory keys off this count.
func (n Numeral) BitLength() int {
	if n.base != Binary {
		return 0
	}
	return len(n.digits)
}
