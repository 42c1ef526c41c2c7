package session

import "fmt"

// StringTable is the ordered, append-only list of original literal
// fragments (string, char, and regex literals) elided from the source
// during stage 1. Placeholders take the form 'N' (an integer index in
// single quotes) so they survive every later regex-driven pass untouched.
type StringTable struct {
	entries []string
}

// Add records a literal fragment and returns its index.
func (t *StringTable) Add(fragment string) int {
	t.entries = append(t.entries, fragment)
	return len(t.entries) - 1
}

// Get returns the literal fragment recorded at index i.
func (t *StringTable) Get(i int) (string, bool) {
	if i < 0 || i >= len(t.entries) {
		return "", false
	}
	return t.entries[i], true
}

// Len reports how many literals have been recorded.
func (t *StringTable) Len() int {
	return len(t.entries)
}

// StringPlaceholder renders the inline 'N' reference token for a string entry.
func StringPlaceholder(index int) string {
	return fmt.Sprintf("'%d'", index)
}
