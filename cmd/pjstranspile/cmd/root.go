package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "pjstranspile",
	Short: "Transpile Processing-dialect sources into host-runtime scripts",
	Long: `pjstranspile is a source-to-source translator that converts a
Java-like Processing dialect into a script evaluated by a host sketch
engine at runtime.

It runs the full atom-masking pipeline: elision, identifier escaping,
generics stripping, bracket atomization, declaration extraction,
expression/statement lowering, class body assembly, metadata weighting,
rendering, and string reinjection.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a defaultScope/aFunctions/libraries config file")
}
