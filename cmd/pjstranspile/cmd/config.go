package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bramblecore/pjstranspile/internal/hostlib"
)

var registryPath string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the library export registry",
}

var addExportCmd = &cobra.Command{
	Use:   "add-export <library> <name>",
	Short: "Register a library export so it resolves as a host global",
	Long: `Adds <name> to <library>'s export list in the JSON registry file,
skipping the write if it is already present. Subsequent transpile runs that
load this registry (via a config file's "registry" key) will treat <name>
as a host-runtime identifier instead of rewriting it as a local/field
reference.`,
	Args: cobra.ExactArgs(2),
	RunE: runAddExport,
}

var listExportsCmd = &cobra.Command{
	Use:   "list-exports",
	Short: "List every library and its registered exports",
	Args:  cobra.NoArgs,
	RunE:  runListExports,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(addExportCmd)
	configCmd.AddCommand(listExportsCmd)
	configCmd.PersistentFlags().StringVar(&registryPath, "registry", "registry.json", "path to the JSON library registry")
}

func runAddExport(_ *cobra.Command, args []string) error {
	library, name := args[0], args[1]

	reg, err := hostlib.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry %s: %w", registryPath, err)
	}

	if err := reg.AddExport(library, name); err != nil {
		return fmt.Errorf("failed to add export: %w", err)
	}

	fmt.Printf("registered %s.%s in %s\n", library, name, registryPath)
	return nil
}

func runListExports(_ *cobra.Command, _ []string) error {
	reg, err := hostlib.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry %s: %w", registryPath, err)
	}

	for _, lib := range reg.Libraries() {
		fmt.Printf("%s:\n", lib.Name)
		for _, e := range lib.Exports {
			fmt.Printf("  %s\n", e)
		}
	}
	return nil
}
