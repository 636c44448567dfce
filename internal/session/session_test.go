// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"strings"
	"testing"

	"radix-cli/internal/convert"
)

func newTestSession(input string, out *strings.Builder) *Session {
	conv := convert.New(convert.SelectEngine(convert.EngineAuto), 32)
	return New(strings.NewReader(input), out, conv, NewRenderer(PlainStyles()))
}

func TestSession_DecimalConversion(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := newTestSession("d\n255\nq\n", &out)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "11111111") {
		t.Errorf("output missing binary representation:\n%s", got)
	}
	if !strings.Contains(got, "FF") {
		t.Errorf("output missing hex representation:\n%s", got)
	}
}

func TestSession_BinaryConversionWithAdvisory(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := newTestSession("b\n"+strings.Repeat("1", 32)+"\nq\n", &out)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "4294967295") {
		t.Errorf("output missing decimal representation:\n%s", got)
	}
	if !strings.Contains(got, "FFFFFFFF") {
		t.Errorf("output missing hex representation:\n%s", got)
	}
	if !strings.Contains(got, "32 bits") {
		t.Errorf("output missing overflow advisory:\n%s", got)
	}
}

func TestSession_InvalidInputReprompts(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := newTestSession("b\n102\nb\n101010\nq\n", &out)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "error:") {
		t.Errorf("output missing validation error:\n%s", got)
	}
	if !strings.Contains(got, "Binary numbers may only contain 0 and 1") {
		t.Errorf("output missing retry suggestion:\n%s", got)
	}
	// The loop kept going after the bad input.
	if !strings.Contains(got, "42") {
		t.Errorf("output missing conversion after retry:\n%s", got)
	}
}

func TestSession_HexLowercaseAccepted(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := newTestSession("h\n2a\nq\n", &out)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "2A") {
		t.Errorf("output missing canonical hex input:\n%s", got)
	}
	if !strings.Contains(got, "101010") {
		t.Errorf("output missing binary representation:\n%s", got)
	}
}

func TestSession_UnknownSelection(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := newTestSession("x\nq\n", &out)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !strings.Contains(out.String(), "unknown selection") {
		t.Errorf("output missing unknown-selection error:\n%s", out.String())
	}
}

func TestSession_EOFEndsCleanly(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	s := newTestSession("", &out)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() at EOF returned error: %v", err)
	}
}

func TestSession_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	s := newTestSession("d\n1\nq\n", &out)

	if err := s.Run(ctx); err == nil {
		t.Fatal("Run() with cancelled context succeeded, want context error")
	}
}
