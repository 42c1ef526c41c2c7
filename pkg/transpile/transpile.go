// Package transpile is the public entry point (spec §6): Transpile
// converts one Java-like source document into a single target-language
// string by running all eleven pipeline stages in order.
package transpile

import (
	"fmt"

	"github.com/bramblecore/pjstranspile/internal/atomize"
	internalerrors "github.com/bramblecore/pjstranspile/internal/errors"
	"github.com/bramblecore/pjstranspile/internal/lexer"
	"github.com/bramblecore/pjstranspile/internal/render"
	"github.com/bramblecore/pjstranspile/internal/semantic"
	"github.com/bramblecore/pjstranspile/internal/session"
	"github.com/bramblecore/pjstranspile/internal/xform"
)

// Options is the external configuration record spec §6 describes:
// defaultScope plus aFunctions and the library export registry, merged
// into a fresh session for each Transpile call.
type Options struct {
	DefaultScope map[string]bool
	AFunctions   map[string]string
	Libraries    map[string]session.Library
	File         string // source filename, used only for error messages
}

func (o Options) toSessionOptions() session.Options {
	return session.Options{
		DefaultScope: o.DefaultScope,
		AFunctions:   o.AFunctions,
		Libraries:    o.Libraries,
	}
}

// Transpile runs the full pipeline (spec §2) over source and returns
// the rendered target-language string. The only error returns are the
// two fatal conditions spec §7 names: unbalanced bracket nesting
// (returned directly from the atomizer) and, via
// internalerrors.Recover, an internal assertion failure raised during
// rendering (a missing atom index — a programmer bug, not malformed
// input).
func Transpile(source string, opts Options) (out string, err error) {
	defer internalerrors.Recover(&err)

	sess := session.New(opts.toSessionOptions())

	normalized := lexer.NormalizeLineEndings(source)
	elided := lexer.Elide(normalized, &sess.Strings)
	nfc := lexer.NormalizeIdentifiers(elided)
	escaped := lexer.EscapeIdentifiers(nfc)
	stripped := lexer.StripGenerics(escaped)

	rootIdx, atomErr := atomize.Atomize(stripped, &sess.Atoms, source, opts.File)
	if atomErr != nil {
		return "", fmt.Errorf("transpile: %w", atomErr)
	}

	builder := xform.NewBuilder(sess)
	root, topLevelInfos := builder.BuildTopLevel(sess.Atoms.Get(rootIdx).Text)

	semantic.ResolveLinks(sess.Classes)
	semantic.Weight(sess.Classes)
	xform.SortTopLevelByWeight(root, topLevelInfos)

	ctx := render.NewContext(sess.Options)
	rendered := root.Emit(ctx)

	reinjected := lexer.Reinject(rendered, &sess.Strings)
	return reinjected, nil
}
