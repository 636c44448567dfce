// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"radix-cli/internal/numeral"
	"radix-cli/internal/session"
	"radix-cli/internal/tui"
)

const menuQuit = "quit"

var menuChoices = []string{"decimal", "binary", "hexadecimal", menuQuit}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive conversion session",
	Long: `Run an interactive conversion session: pick a source base, enter a
value, see it in the other two bases, repeat. Invalid input keeps you on
the prompt with a hint instead of aborting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

// runMenu loops select-base / enter-value / render until the user quits.
func runMenu(cmd *cobra.Command) error {
	tuiCfg := tui.DefaultConfig()
	if cfg.UI.Accessible {
		tuiCfg.Accessible = true
	}

	conv := newConverter()
	renderer := session.NewRenderer(stylesForWriter(cmd.OutOrStdout()))

	for {
		choice, err := tui.Choose(tui.ChooseOptions{
			Title:   "Convert from which base?",
			Options: menuChoices,
			Config:  tuiCfg,
		})
		if err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				return nil
			}
			return err
		}
		if choice == menuQuit {
			return nil
		}

		base, err := baseForName(choice)
		if err != nil {
			return err
		}

		text, err := tui.Input(tui.InputOptions{
			Title:       fmt.Sprintf("Enter a %s number", base),
			Placeholder: placeholderFor(base),
			Validate: func(s string) error {
				_, err := numeral.Parse(s, base)
				return err
			},
			Config: tuiCfg,
		})
		if err != nil {
			if errors.Is(err, tui.ErrCancelled) {
				continue
			}
			return err
		}

		res, err := conv.From(text, base)
		if err != nil {
			// The input prompt already validated; only a race with the
			// validator could land here. Render and keep looping.
			fmt.Fprint(cmd.OutOrStdout(), renderer.Error(err))
			continue
		}

		fmt.Fprint(cmd.OutOrStdout(), renderer.Result(res))
	}
}

// baseForName maps a menu choice to its base.
func baseForName(name string) (numeral.Base, error) {
	switch name {
	case "decimal":
		return numeral.Decimal, nil
	case "binary":
		return numeral.Binary, nil
	case "hexadecimal":
		return numeral.Hexadecimal, nil
	default:
		return 0, fmt.Errorf("unknown base selection %q", name)
	}
}

// placeholderFor returns example input for a base's prompt.
func placeholderFor(base numeral.Base) string {
	switch base {
	case numeral.Binary:
		return "101010"
	case numeral.Hexadecimal:
		return "2A"
	default:
		return "42"
	}
}
