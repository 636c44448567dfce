// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "radix-cli/cmd/radix"
)

func main() {
	cmd.Execute()
}
