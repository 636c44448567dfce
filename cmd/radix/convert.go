// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"radix-cli/internal/convert"
	"radix-cli/internal/issue"
	"radix-cli/internal/numeral"
	"radix-cli/internal/session"
)

// engineFlag overrides the configured conversion engine (--engine).
var engineFlag string

var decCmd = &cobra.Command{
	Use:   "dec <value>",
	Short: "Convert a decimal number to binary and hexadecimal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], numeral.Decimal)
	},
}

var binCmd = &cobra.Command{
	Use:   "bin <value>",
	Short: "Convert a binary number to decimal and hexadecimal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], numeral.Binary)
	},
}

var hexCmd = &cobra.Command{
	Use:   "hex <value>",
	Short: "Convert a hexadecimal number to decimal and binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], numeral.Hexadecimal)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&engineFlag, "engine", "", "conversion engine (auto, big, manual)")
}

// newConverter builds a converter from config plus the --engine override.
func newConverter() *convert.Converter {
	choice := convert.EngineName(cfg.Convert.Engine)
	if engineFlag != "" {
		choice = convert.EngineName(engineFlag)
	}
	return convert.New(convert.SelectEngine(choice), int(cfg.Convert.NativeWordBits))
}

// runConvert performs a one-shot conversion and renders it to the
// command's output.
func runConvert(cmd *cobra.Command, text string, base numeral.Base) error {
	conv := newConverter()

	res, err := conv.From(text, base)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation(fmt.Sprintf("convert %s input", base)).
			WithInput(text).
			WithSuggestion(session.SuggestionFor(base, err)).
			Wrap(err).
			BuildError()
	}

	renderer := session.NewRenderer(stylesForWriter(cmd.OutOrStdout()))
	fmt.Fprint(cmd.OutOrStdout(), renderer.Result(res))
	return nil
}

// stylesForWriter picks colored styles for terminals and plain styles for
// pipes and files.
func stylesForWriter(w io.Writer) session.Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return session.DefaultStyles()
	}
	return session.PlainStyles()
}
