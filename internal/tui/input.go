// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// InputOptions configures a free-text input prompt.
type InputOptions struct {
	// Title is the title/prompt displayed above the input.
	Title string
	// Description provides additional context below the title.
	Description string
	// Placeholder is the placeholder text shown when input is empty.
	Placeholder string
	// Prompt is the character(s) shown before the input (default: "> ").
	Prompt string
	// Validate rejects input in place: returning an error keeps the user
	// on the field with the message shown. Nil accepts everything.
	Validate func(string) error
	// Config holds common TUI configuration.
	Config Config
}

// Input presents a validated text input prompt and returns the entered
// value. Returns ErrCancelled when the user aborts.
func Input(opts InputOptions) (string, error) {
	var result string

	in := huh.NewInput().
		Title(opts.Title).
		Value(&result)
	if opts.Description != "" {
		in.Description(opts.Description)
	}
	if opts.Placeholder != "" {
		in.Placeholder(opts.Placeholder)
	}
	if opts.Prompt != "" {
		in.Prompt(opts.Prompt)
	}
	if opts.Validate != nil {
		in.Validate(opts.Validate)
	}

	form := huh.NewForm(huh.NewGroup(in)).
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

// Confirm presents a yes/no prompt and returns the answer.
// Returns ErrCancelled when the user aborts.
func Confirm(title string, affirmative, negative string, cfg Config) (bool, error) {
	if affirmative == "" {
		affirmative = "Yes"
	}
	if negative == "" {
		negative = "No"
	}

	var result bool

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative(affirmative).
			Negative(negative).
			Value(&result),
	)).
		WithTheme(getHuhTheme(cfg.Theme)).
		WithAccessible(shouldUseAccessible(cfg)).
		WithOutput(getOutputWriter(cfg))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, err
	}
	return result, nil
}
