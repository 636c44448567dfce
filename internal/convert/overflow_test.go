// SPDX-License-Identifier: MPL-2.0

package convert

import (
	"strings"
	"testing"
)

func TestCheckOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		digits   string
		wordBits int
		want     bool
	}{
		{name: "31 bits on 32-bit word", digits: strings.Repeat("1", 31), wordBits: 32, want: false},
		{name: "32 bits on 32-bit word", digits: strings.Repeat("1", 32), wordBits: 32, want: true},
		{name: "64 bits on 32-bit word", digits: strings.Repeat("1", 64), wordBits: 32, want: true},
		{name: "32 bits on 64-bit word", digits: strings.Repeat("1", 32), wordBits: 64, want: false},
		{name: "128 bits on 64-bit word", digits: strings.Repeat("1", 128), wordBits: 64, want: false},
		{name: "single bit", digits: "1", wordBits: 32, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := CheckOverflow(tt.digits, tt.wordBits)
			if got := w != nil; got != tt.want {
				t.Fatalf("CheckOverflow(%d bits, %d-bit word) warning = %v, want %v",
					len(tt.digits), tt.wordBits, got, tt.want)
			}
			if w != nil {
				if w.BitLength != len(tt.digits) {
					t.Errorf("BitLength = %d, want %d", w.BitLength, len(tt.digits))
				}
				if w.WordBits != tt.wordBits {
					t.Errorf("WordBits = %d, want %d", w.WordBits, tt.wordBits)
				}
				if w.Message() == "" {
					t.Error("expected non-empty advisory message")
				}
			}
		})
	}
}

func TestNativeWordBits(t *testing.T) {
	t.Parallel()

	if got := NativeWordBits(); got != 32 && got != 64 {
		t.Errorf("NativeWordBits() = %d, want 32 or 64", got)
	}
}
