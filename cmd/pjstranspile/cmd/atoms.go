package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/bramblecore/pjstranspile/internal/atomize"
	"github.com/bramblecore/pjstranspile/internal/lexer"
	"github.com/bramblecore/pjstranspile/internal/session"
	"github.com/bramblecore/pjstranspile/internal/xform"
)

var debugAST bool

var atomsCmd = &cobra.Command{
	Use:   "atoms [file]",
	Short: "Print the atom table produced by lexing and atomization",
	Long: `Runs the elider, identifier escaper, generics stripper, and bracket
atomizer over a source file and prints every recorded atom.

With --debug-ast, also builds the class/statement tree (stage 8) and
pretty-prints it before metadata weighting and rendering run.`,
	Args: cobra.ExactArgs(1),
	RunE: runAtoms,
}

func init() {
	rootCmd.AddCommand(atomsCmd)
	atomsCmd.Flags().BoolVar(&debugAST, "debug-ast", false, "also pretty-print the constructed AST")
}

func runAtoms(_ *cobra.Command, args []string) error {
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

	for i := 0; i < sess.Atoms.Len(); i++ {
		atom := sess.Atoms.Get(i)
		fmt.Printf("%3d %c %s\n", i, atom.Kind, atom.Text)
	}

	if debugAST {
		builder := xform.NewBuilder(sess)
		root, _ := builder.BuildTopLevel(sess.Atoms.Get(rootIdx).Text)
		fmt.Println("--- AST ---")
		pretty.Println(root)
	}

	return nil
}
