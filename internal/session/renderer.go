// SPDX-License-Identifier: MPL-2.0

package session

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"radix-cli/internal/convert"
	"radix-cli/internal/issue"
	"radix-cli/internal/numeral"
)

type (
	// Styles groups the lipgloss styles a Renderer draws with. Callers
	// inject their own palette; DefaultStyles matches the CLI theme.
	Styles struct {
		// Title is for section headers.
		Title lipgloss.Style
		// Label is for the base names in a result block.
		Label lipgloss.Style
		// Value is for the converted digit strings.
		Value lipgloss.Style
		// Error is for validation failures.
		Error lipgloss.Style
		// Warning is for advisories.
		Warning lipgloss.Style
		// Muted is for secondary text.
		Muted lipgloss.Style
	}

	// Renderer turns conversion results and errors into styled text.
	// It holds no output writer: callers decide where the text goes,
	// which keeps the conversion core free of presentation concerns.
	Renderer struct {
		styles Styles
	}
)

// DefaultStyles returns the renderer's standard palette, tuned for dark
// terminal backgrounds.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

// PlainStyles returns an uncolored palette for non-TTY output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:   plain,
		Label:   plain,
		Value:   plain,
		Error:   plain,
		Warning: plain,
		Muted:   plain,
	}
}

// NewRenderer creates a Renderer drawing with the given styles.
func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Result renders a conversion result as a block of "<base>: <digits>"
// lines, with the overflow advisory (if any) appended.
func (r *Renderer) Result(res convert.Result) string {
	var sb strings.Builder

	sb.WriteString(r.styles.Title.Render(res.Input.Digits()))
	sb.WriteString(r.styles.Muted.Render(" (" + res.Input.Base().String() + ")"))
	sb.WriteString("\n")

	for _, out := range res.Outputs {
		label := out.Base().String()
		sb.WriteString("  ")
		sb.WriteString(r.styles.Label.Render(padLabel(label)))
		sb.WriteString(" ")
		sb.WriteString(r.styles.Value.Render(out.Digits()))
		sb.WriteString("\n")
	}

	if res.Warning != nil {
		adv := issue.NewAdvisory("Possible overflow", res.Warning.Message())
		sb.WriteString(r.styles.Warning.Render("  ! " + adv.Body()))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Error renders a recoverable failure with its suggestions.
func (r *Renderer) Error(err error) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Error.Render("error: " + err.Error()))

	var actionable *issue.ActionableError
	if errors.As(err, &actionable) && actionable.HasSuggestions() {
		for _, sug := range actionable.Suggestions {
			sb.WriteString("\n")
			sb.WriteString(r.styles.Muted.Render("  • " + sug))
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

// Hint renders secondary instructional text.
func (r *Renderer) Hint(text string) string {
	return r.styles.Muted.Render(text)
}

// padLabel right-pads base names so values line up in a result block.
// "hexadecimal" is the longest label at 11 runes.
func padLabel(label string) string {
	const width = 12
	padded := label + ":"
	for len(padded) < width+1 {
		padded += " "
	}
	return padded
}

// SuggestionFor maps a validation failure to retry guidance for the base
// being parsed.
func SuggestionFor(base numeral.Base, err error) string {
	if errors.Is(err, numeral.ErrEmptyInput) {
		return "Enter at least one digit"
	}
	switch base {
	case numeral.Binary:
		return "Binary numbers may only contain 0 and 1"
	case numeral.Decimal:
		return "Decimal numbers may only contain digits 0-9"
	case numeral.Hexadecimal:
		return "Hexadecimal numbers may only contain 0-9 and A-F"
	default:
		return "Enter a valid number"
	}
}
