// Package atomize implements pipeline stage 4 (spec §4.3): recursively
// replacing every balanced {}, [], () group with a typed placeholder
// token, flattening the source into a single atomized token stream plus an
// append-only atom table.
package atomize

import (
	"fmt"

	internalerrors "github.com/bramblecore/pjstranspile/internal/errors"
	"github.com/bramblecore/pjstranspile/internal/session"
)

type opener struct {
	ch     rune
	offset int
}

// Atomize consumes s (already elided, escaped, and generics-stripped) and
// records every balanced bracket group into at, replacing it inline with
// its "K N" placeholder. The bracket-free top-level remainder is itself
// recorded into at, after every nested group, so the declaration
// extractor can run over it the same way it runs over any nested
// brace-atom body. The root is therefore the last entry, not entry 0;
// Atomize returns its index.
func Atomize(s string, at *session.AtomTable, source, file string) (int, error) {
	runes := []rune(s)
	var stack []opener
	var buffers []string
	current := ""

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch ch {
		case '{', '(', '[':
			stack = append(stack, opener{ch: ch, offset: i})
			buffers = append(buffers, current)
			current = string(ch)
		case '}', ')', ']':
			if len(stack) == 0 {
				return 0, internalerrors.UnbalancedBrackets(source, file, i)
			}
			top := stack[len(stack)-1]
			if !matches(top.ch, ch) {
				return 0, internalerrors.UnbalancedBrackets(source, file, i)
			}
			stack = stack[:len(stack)-1]
			current += string(ch)
			idx := at.Add(kindFor(ch), current)
			current = buffers[len(buffers)-1] + session.Placeholder(kindFor(ch), idx)
			buffers = buffers[:len(buffers)-1]
		default:
			current += string(ch)
		}
	}

	if len(stack) > 0 {
		return 0, internalerrors.UnbalancedBrackets(source, file, stack[len(stack)-1].offset)
	}

	rootIndex := at.Add(session.KindBrace, current)
	return rootIndex, nil
}

func matches(open, close rune) bool {
	switch open {
	case '{':
		return close == '}'
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	}
	return false
}

func kindFor(closer rune) session.AtomKind {
	switch closer {
	case '}':
		return session.KindBrace
	case ')':
		return session.KindParen
	case ']':
		return session.KindBracket
	}
	panic(fmt.Sprintf("atomize: unknown closer %q", closer))
}
