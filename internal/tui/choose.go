// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt (Esc or Ctrl+C).
var ErrCancelled = errors.New("prompt cancelled")

// ChooseOptions configures a single-select prompt.
type ChooseOptions struct {
	// Title is the title/prompt displayed above the options.
	Title string
	// Description provides additional context below the title.
	Description string
	// Options is the list of options to choose from, shown in order.
	Options []string
	// Config holds common TUI configuration.
	Config Config
}

// Choose presents a single-select prompt and returns the chosen option.
// Returns ErrCancelled when the user aborts.
func Choose(opts ChooseOptions) (string, error) {
	if len(opts.Options) == 0 {
		return "", fmt.Errorf("choose prompt %q has no options", opts.Title)
	}

	var result string

	sel := huh.NewSelect[string]().
		Title(opts.Title).
		Options(huh.NewOptions(opts.Options...)...).
		Value(&result)
	if opts.Description != "" {
		sel.Description(opts.Description)
	}

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(getHuhTheme(opts.Config.Theme)).
		WithAccessible(shouldUseAccessible(opts.Config)).
		WithOutput(getOutputWriter(opts.Config))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return result, nil
}
