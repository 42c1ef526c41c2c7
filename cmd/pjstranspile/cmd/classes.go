package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"

	"github.com/bramblecore/pjstranspile/internal/atomize"
	"github.com/bramblecore/pjstranspile/internal/lexer"
	"github.com/bramblecore/pjstranspile/internal/semantic"
	"github.com/bramblecore/pjstranspile/internal/session"
	"github.com/bramblecore/pjstranspile/internal/xform"
)

var classesCmd = &cobra.Command{
	Use:   "classes [file]",
	Short: "List every class/interface declared in a source file",
	Long: `Runs the pipeline through metadata weighting (stage 9) and prints each
declared class or interface, its base class, and its computed emission
weight. Names are listed in natural sort order (so Class2 sorts before
Class10).`,
	Args: cobra.ExactArgs(1),
	RunE: runClasses,
}

func init() {
	rootCmd.AddCommand(classesCmd)
}

func runClasses(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	sess := session.New(session.Options{})
	source := string(content)

	normalized := lexer.NormalizeLineEndings(source)
	elided := lexer.Elide(normalized, &sess.Strings)
	nfc := lexer.NormalizeIdentifiers(elided)
	escaped := lexer.EscapeIdentifiers(nfc)
	stripped := lexer.StripGenerics(escaped)

	rootIdx, err := atomize.Atomize(stripped, &sess.Atoms, source, filename)
	if err != nil {
		return fmt.Errorf("atomization failed: %w", err)
	}

	builder := xform.NewBuilder(sess)
	_, _ = builder.BuildTopLevel(sess.Atoms.Get(rootIdx).Text)

	semantic.ResolveLinks(sess.Classes)
	semantic.Weight(sess.Classes)

	all := sess.Classes.All()
	sort.Slice(all, func(i, j int) bool {
		return natural.Less(all[i].Name, all[j].Name)
	})

	for _, c := range all {
		kind := "class"
		if c.IsInterface {
			kind = "interface"
		}
		base := c.BaseName
		if base == "" {
			base = "-"
		}
		fmt.Printf("%-20s %-10s base=%-15s weight=%d\n", c.Name, kind, base, c.Weight)
	}

	return nil
}
