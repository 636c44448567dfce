// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"radix-cli/internal/tui"
)

// cheatsheet is the markdown reference rendered by `radix docs`.
const cheatsheet = `# Number base conversion

radix works on non-negative integers in three bases:

| Base | Name        | Alphabet            | Example    |
|------|-------------|---------------------|------------|
| 2    | binary      | 0 1                 | 101010     |
| 10   | decimal     | 0-9                 | 42         |
| 16   | hexadecimal | 0-9 A-F             | 2A         |

Hexadecimal input is case-insensitive; output is always uppercase.

## Commands

` + "```" + `
radix dec 255       ->  binary 11111111, hex FF
radix bin 101010    ->  decimal 42, hex 2A
radix hex 2A        ->  decimal 42, binary 101010
` + "```" + `

## How conversion works

Every conversion goes through an arbitrary-precision integer:

1. The input digits are decoded positionally: for each digit,
   ` + "`acc = acc*base + digit`" + `.
2. The value is re-encoded in the target base by repeated division:
   ` + "`digit = value mod base; value = value div base`" + `, prepending
   each digit, until the value reaches zero. Zero encodes as ` + "`0`" + `.

Because values never touch native machine integers, inputs of any length
convert exactly. Binary inputs longer than 31 bits still carry an
advisory on 32-bit hosts, as a heads-up that the value would not fit a
native int there.
`

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the conversion cheatsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := tui.Format(tui.FormatOptions{
			Content: cheatsheet,
			Type:    tui.FormatMarkdown,
			Width:   80,
		})
		if err != nil {
			// Raw markdown is still readable.
			out = cheatsheet
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
