// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
)

type (
	// Advisory is a non-fatal notice rendered to the user alongside an
	// otherwise successful result, e.g. the overflow advisory on long
	// binary inputs.
	Advisory struct {
		title string
		body  string
	}
)

// render is swapped out in tests.
var render = glamour.Render

// NewAdvisory creates an advisory with a short title and a body sentence.
func NewAdvisory(title, body string) *Advisory {
	return &Advisory{title: title, body: body}
}

// Title returns the advisory's title.
func (a *Advisory) Title() string { return a.title }

// Body returns the advisory's body text.
func (a *Advisory) Body() string { return a.body }

// Markdown returns the advisory as a Markdown fragment.
func (a *Advisory) Markdown() string {
	return "**" + a.title + "**\n\n" + a.body
}

// Render renders the advisory's Markdown for the terminal using the given
// glamour style ("dark", "light", "auto", ...). On render failure the raw
// Markdown comes back so the notice is never lost.
func (a *Advisory) Render(stylePath string) string {
	out, err := render(a.Markdown(), stylePath)
	if err != nil {
		return a.Markdown()
	}
	return out
}
