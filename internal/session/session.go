// SPDX-License-Identifier: MPL-2.0

// Package session implements the line-oriented conversion loop: read a
// base selection and a value, validate, convert, render, repeat. The loop
// is bound to plain io.Reader/io.Writer pairs so the same code serves a
// local terminal and an SSH channel.
//
// Sessions are stateless between requests: each conversion is a pure
// function of its input, and nothing outlives a single iteration.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"radix-cli/internal/convert"
	"radix-cli/internal/issue"
	"radix-cli/internal/numeral"
)

const banner = "radix - number base converter\n"

const menu = `
  d) convert from decimal
  b) convert from binary
  h) convert from hexadecimal
  q) quit
`

type (
	// Session runs the interactive conversion loop over a reader/writer
	// pair. Create one per connection; a Session is not safe for
	// concurrent use, but independent Sessions share nothing.
	Session struct {
		in       *bufio.Scanner
		out      io.Writer
		conv     *convert.Converter
		renderer *Renderer
	}
)

// New creates a Session reading commands from in and writing rendered
// output to out.
func New(in io.Reader, out io.Writer, conv *convert.Converter, renderer *Renderer) *Session {
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		conv:     conv,
		renderer: renderer,
	}
}

// Run drives the loop until the user quits, input ends, or the context is
// cancelled. Validation failures are rendered and the loop continues; the
// only error returns are I/O failures on the underlying streams.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, menu)
		fmt.Fprint(s.out, "> ")

		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}

		var base numeral.Base
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "d", "dec", "decimal":
			base = numeral.Decimal
		case "b", "bin", "binary":
			base = numeral.Binary
		case "h", "hex", "hexadecimal":
			base = numeral.Hexadecimal
		case "q", "quit", "exit":
			fmt.Fprintln(s.out, s.renderer.Hint("bye"))
			return nil
		case "":
			continue
		default:
			fmt.Fprint(s.out, s.renderer.Error(fmt.Errorf("unknown selection %q", strings.TrimSpace(line))))
			continue
		}

		if err := s.convertOnce(base); err != nil {
			return err
		}
	}
}

// convertOnce prompts for a value in the given base, converts it, and
// renders the result. A validation failure is rendered with a retry
// suggestion and reported as success: the caller's loop continues.
func (s *Session) convertOnce(base numeral.Base) error {
	fmt.Fprintf(s.out, "enter a %s number: ", base)

	line, ok := s.readLine()
	if !ok {
		return s.in.Err()
	}

	res, err := s.conv.From(line, base)
	if err != nil {
		actionable := issue.NewErrorContext().
			WithOperation(fmt.Sprintf("convert %s input", base)).
			WithInput(strings.TrimSpace(line)).
			WithSuggestion(SuggestionFor(base, err)).
			Wrap(err).
			Build()
		fmt.Fprint(s.out, s.renderer.Error(actionable))
		return nil
	}

	fmt.Fprint(s.out, s.renderer.Result(res))
	return nil
}

// readLine returns the next input line. The second return is false on EOF
// or read failure.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// ErrClosed reports whether err looks like the peer going away or the
// session being shut down rather than a real failure; the SSH handler
// treats those as clean exits.
func ErrClosed(err error) bool {
	return err == nil ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, context.Canceled)
}
