package lexer

import (
	"regexp"
	"strconv"

	"github.com/bramblecore/pjstranspile/internal/session"
)

// stringPlaceholder matches an 'N' reference token left by Elide.
var stringPlaceholder = regexp.MustCompile(`'(\d+)'`)

// Reinject restores every 'N' string/char/regex placeholder in rendered
// with its original literal fragment from st, then reverses the
// identifier escape (spec §4.1, stage 11). It must run last, after
// rendering, so literal text containing placeholder-shaped substrings
// introduced by user source cannot be confused with the lexer's own
// placeholders (those were already escaped as string-table entries during
// Elide, not left as raw text).
func Reinject(rendered string, st *session.StringTable) string {
	restored := stringPlaceholder.ReplaceAllStringFunc(rendered, func(m string) string {
		groups := stringPlaceholder.FindStringSubmatch(m)
		idx, err := strconv.Atoi(groups[1])
		if err != nil {
			return m
		}
		frag, ok := st.Get(idx)
		if !ok {
			return m
		}
		return frag
	})
	return UnescapeIdentifiers(restored)
}
