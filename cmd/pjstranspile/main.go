// Command pjstranspile is the CLI front end for the core transpiler:
// it reads a Java-like source file, runs it through the pipeline, and
// writes the rendered target-language output.
package main

import (
	"fmt"
	"os"

	"github.com/bramblecore/pjstranspile/cmd/pjstranspile/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
