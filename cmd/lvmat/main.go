// SPDX-License-Identifier: MIT

// Command lvmat evaluates elementwise matrix expressions over a workspace file.
package main

import (
	"os"

	"github.com/katalvlaran/lvmat/cmd/lvmat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
