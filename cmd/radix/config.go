// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"radix-cli/internal/config"
	"radix-cli/internal/tui"
)

// newConfigCommand creates the `radix config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage radix configuration",
		Long: `Manage radix configuration.

Configuration is stored in:
  - Linux: ~/.config/radix/config.toml
  - macOS: ~/Library/Application Support/radix/config.toml
  - Windows: %APPDATA%\radix\config.toml

Every setting can also be set through the environment with the RADIX_
prefix, e.g. RADIX_CONVERT_ENGINE=manual.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteDefault()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("created ")+path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.FilePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	return cfgCmd
}

// showConfig renders the active configuration as a highlighted TOML block.
func showConfig(cmd *cobra.Command) error {
	rendered, err := config.Render(cfg)
	if err != nil {
		return err
	}

	out, err := tui.Format(tui.FormatOptions{
		Content:  rendered,
		Type:     tui.FormatCode,
		Language: "toml",
	})
	if err != nil {
		// Fall back to the raw TOML when the terminal renderer balks.
		out = rendered
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
