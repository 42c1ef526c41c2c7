// Package session holds the per-invocation, mutable state threaded through
// every pipeline stage: the atom table, the string table, and the class
// registry. A Session is created fresh for each Transpile call and never
// shared across invocations (see spec §5).
package session

import (
	"fmt"

	internalerrors "github.com/bramblecore/pjstranspile/internal/errors"
)

// AtomKind tags what a bracket-delimited or declaration fragment holds.
type AtomKind byte

const (
	KindBrace         AtomKind = 'A' // {...}
	KindParen         AtomKind = 'B' // (...)
	KindBracket       AtomKind = 'C' // [...]
	KindMethod        AtomKind = 'D'
	KindClass         AtomKind = 'E'
	KindInlineClass   AtomKind = 'F'
	KindConstructor   AtomKind = 'G'
	KindFunction      AtomKind = 'H'
	KindInlineObject  AtomKind = 'I'
)

// Atom is a single entry of the append-only atom table.
type Atom struct {
	Kind AtomKind
	Text string
}

// AtomTable is the ordered, append-only list of source fragments produced
// by the bracket atomizer and declaration extractor.
type AtomTable struct {
	entries []Atom
}

// Add appends a new atom and returns its index.
func (t *AtomTable) Add(kind AtomKind, text string) int {
	t.entries = append(t.entries, Atom{Kind: kind, Text: text})
	return len(t.entries) - 1
}

// Get returns the atom at index i. It panics via AssertionError semantics
// (recovered at the Transpile boundary) when i is out of range, per spec §7:
// "Missing atom indices during rendering indicate a programmer bug and
// should assert."
func (t *AtomTable) Get(i int) Atom {
	if i < 0 || i >= len(t.entries) {
		internalerrors.Assertf("atom table: index %d out of range (len=%d)", i, len(t.entries))
	}
	return t.entries[i]
}

// Len reports how many atoms have been recorded.
func (t *AtomTable) Len() int {
	return len(t.entries)
}

// Placeholder renders the inline reference token "K N" for an atom.
func Placeholder(kind AtomKind, index int) string {
	return fmt.Sprintf("\"%c %d\"", kind, index)
}
