package lexer

import "strings"

// genericsContentRunes are the only characters allowed inside a type
// parameter list the stripper will erase: identifier characters, dots
// (qualified names), commas, whitespace, '?' (wildcards), and the square
// brackets of array type suffixes. "extends"/"super" are just runs of
// letters, already covered.
func isGenericsContentRune(r rune) bool {
	switch {
	case r == '_' || r == '.' || r == ',' || r == '?' || r == '[' || r == ']':
		return true
	case r == ' ' || r == '\t' || r == '\n':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return false
}

// StripGenerics repeatedly erases balanced `<...>` type-parameter lists
// until a pass makes no further change (spec §4.2: nested erasures unlock
// outer ones, so innermost `<Integer>` must disappear before
// `<String, List>` becomes matchable).
func StripGenerics(s string) string {
	for {
		next, changed := stripGenericsOnce(s)
		if !changed {
			return next
		}
		s = next
	}
}

func stripGenericsOnce(s string) (string, bool) {
	runes := []rune(s)
	var out strings.Builder
	out.Grow(len(runes))
	changed := false

	for i := 0; i < len(runes); {
		if runes[i] != '<' {
			out.WriteRune(runes[i])
			i++
			continue
		}

		// Guard against `<<` and `<=` (spec §4.2).
		if i > 0 && runes[i-1] == '<' {
			out.WriteRune(runes[i])
			i++
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '=' {
			out.WriteRune(runes[i])
			i++
			continue
		}

		j := i + 1
		ok := false
		for j < len(runes) {
			if runes[j] == '>' {
				ok = true
				break
			}
			if runes[j] == '<' || !isGenericsContentRune(runes[j]) {
				break
			}
			j++
		}

		if !ok {
			out.WriteRune(runes[i])
			i++
			continue
		}

		// Erase `<...>` entirely.
		changed = true
		i = j + 1
	}

	return out.String(), changed
}
