// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"fmt"
	"math/bits"
)

// overflowBitThreshold is the largest bit count that fits a signed 32-bit
// integer. Binary inputs longer than this trigger the advisory on 32-bit
// hosts.
const overflowBitThreshold = 31

// narrowWordBits is the native width the advisory is tied to. Wider hosts
// never warn.
const narrowWordBits = 32

type (
	// OverflowWarning advises that a binary input's bit length may exceed
	// the host's native integer width. It is informational: conversion
	// results are exact either way because values are held in big.Int.
	OverflowWarning struct {
		// BitLength is the number of significant binary digits supplied.
		BitLength int
		// WordBits is the native integer width the advisory compared against.
		WordBits int
	}
)

// NativeWordBits returns the width in bits of the host's native uint.
func NativeWordBits() int { return bits.UintSize }

// CheckOverflow returns an advisory when the binary digit string is longer
// than 31 bits and the native word is 32 bits wide, nil otherwise.
//
// Only binary input is checked; decimal and hexadecimal inputs that decode
// to equally large values pass silently. That asymmetry is deliberate and
// matches the tool's long-standing behavior.
func CheckOverflow(binaryDigits string, nativeWordBits int) *OverflowWarning {
	if nativeWordBits != narrowWordBits {
		return nil
	}
	if len(binaryDigits) <= overflowBitThreshold {
		return nil
	}
	return &OverflowWarning{
		BitLength: len(binaryDigits),
		WordBits:  nativeWordBits,
	}
}

// Message returns the advisory text shown to the user.
func (w *OverflowWarning) Message() string {
	return fmt.Sprintf(
		"input is %d bits long and may not fit the native %d-bit integer width; the converted result is still exact",
		w.BitLength, w.WordBits,
	)
}
