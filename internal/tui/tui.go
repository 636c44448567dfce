// SPDX-License-Identifier: MPL-2.0

// Package tui provides a clean API for the terminal prompts radix uses.
// It wraps charmbracelet/huh so the interactive menu gets reusable select
// and input components with consistent theming and accessibility handling.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme represents the visual theme for TUI components.
type Theme string

const (
	// ThemeDefault uses the base huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// Config holds common configuration for TUI components.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible enables accessible mode for screen readers.
	Accessible bool
	// Output specifies where to write the component output.
	Output io.Writer
}

// DefaultConfig returns the default configuration for TUI components.
// Accessible mode is enabled automatically when stdin is not a terminal
// (pipes, command substitution) or the ACCESSIBLE environment variable is
// set; prompts then go to stderr so they are not captured by $().
func DefaultConfig() Config {
	noTTY := !isInputTerminal()
	accessible := noTTY || os.Getenv("ACCESSIBLE") != ""

	var output io.Writer = os.Stdout
	if accessible {
		output = os.Stderr
	}

	return Config{
		Theme:      ThemeDefault,
		Accessible: accessible,
		Output:     output,
	}
}

// isInputTerminal returns true if stdin is connected to a terminal.
// Returns false when running inside command substitution ($()) or pipes.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// shouldUseAccessible returns true if accessible mode should be used,
// honoring both the config setting and the runtime environment.
func shouldUseAccessible(cfg Config) bool {
	return cfg.Accessible || !isInputTerminal()
}

// getOutputWriter returns the writer prompts should render to.
// If cfg.Output is already set, it's returned as-is.
func getOutputWriter(cfg Config) io.Writer {
	if cfg.Output != nil {
		return cfg.Output
	}
	if shouldUseAccessible(cfg) {
		return os.Stderr
	}
	return os.Stdout
}

// getHuhTheme maps a Theme name to a huh theme.
func getHuhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
