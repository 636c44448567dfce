// SPDX-License-Identifier: MPL-2.0

package numeral

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is the sentinel error wrapped by a ParseError whose
	// input was empty (or whitespace-only) after trimming.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidDigit is the sentinel error wrapped by a ParseError whose
	// input contained a rune outside the base's alphabet.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrUnsupportedBase is the sentinel error wrapped by UnsupportedBaseError.
	ErrUnsupportedBase = errors.New("unsupported base")
)

type (
	// ParseError is the recoverable validation failure returned by Parse.
	// Kind is one of ErrEmptyInput or ErrInvalidDigit; for ErrInvalidDigit
	// the offending rune and its byte position are carried along so the
	// caller can point at the exact failure.
	//
	// A ParseError is never fatal: the interactive loop reports it and
	// re-prompts.
	ParseError struct {
		Kind     error
		Base     Base
		Digit    rune
		Position int
	}

	// UnsupportedBaseError is returned when a Base outside {2, 10, 16}
	// reaches Parse. It indicates a programming error in the caller, not
	// bad user input.
	UnsupportedBaseError struct {
		Base Base
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if errors.Is(e.Kind, ErrEmptyInput) {
		return fmt.Sprintf("%s input is empty", e.Base)
	}
	return fmt.Sprintf("invalid %s digit %q at position %d", e.Base, e.Digit, e.Position)
}

// Unwrap returns the error kind for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return e.Kind }

// Error implements the error interface.
func (e *UnsupportedBaseError) Error() string {
	return fmt.Sprintf("unsupported base %d: want 2, 10, or 16", int(e.Base))
}

// Unwrap returns ErrUnsupportedBase for errors.Is() compatibility.
func (e *UnsupportedBaseError) Unwrap() error { return ErrUnsupportedBase }
