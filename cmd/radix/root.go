// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for radix.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"radix-cli/internal/config"
	"radix-cli/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "radix",
		Short: "Convert numbers between decimal, binary, and hexadecimal",
		Long: TitleStyle.Render("radix") + SubtitleStyle.Render(" - number base converter") + `

radix converts non-negative integers between decimal, binary, and
hexadecimal. Values of any length are supported: conversion runs on
arbitrary-precision integers, so nothing silently overflows.

` + SubtitleStyle.Render("Examples:") + `
  radix dec 255             Convert 255 to binary and hexadecimal
  radix bin 101010          Convert 101010 to decimal and hexadecimal
  radix hex 2A              Convert 2A to decimal and binary
  radix menu                Interactive conversion session
  radix serve               Serve conversion sessions over SSH
  radix docs                Show the conversion cheatsheet`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/radix/config.toml)")

	// Add subcommands
	rootCmd.AddCommand(decCmd)
	rootCmd.AddCommand(binCmd)
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Config problems are surfaced but never fatal: defaults apply.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
		if cfg.UI.Verbose {
			verbose = true
		}
	}
}

// formatErrorForDisplay renders an error for the terminal, expanding
// actionable context when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}
