// SPDX-License-Identifier: MIT
// Command sparsemat is the interactive sparse-matrix calculator.
package main

import (
	"os"

	"github.com/katalvlaran/sparsemat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
