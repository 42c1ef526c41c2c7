// Package lexer implements pipeline stages 1–3 and 11: eliding string/char
// /regex literals and comments, escaping identifier characters that must
// survive downstream regex matching, stripping generic type-parameter
// lists, and finally reinjecting literals once rendering is done.
package lexer

import (
	"strings"

	"github.com/bramblecore/pjstranspile/internal/session"
)

// regexContextChars are the characters that, seen immediately before a
// '/', mean the '/' begins a regex literal rather than division (spec
// §4.1).
const regexContextChars = "[(=|&!^:?"

// NormalizeLineEndings converts CRLF and lone CR to LF, so downstream line
// counting (used to preserve line numbers across comment elision) is
// consistent.
func NormalizeLineEndings(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.ReplaceAll(src, "\r", "\n")
}

// Elide replaces every string literal, character literal, and regex
// literal with a 'N' placeholder referencing st, and strips comments to a
// single space (or newline, if the comment itself spanned a line break,
// to preserve statement-separating line counts). It must run after
// NormalizeLineEndings.
func Elide(src string, st *session.StringTable) string {
	runes := []rune(src)
	var out strings.Builder
	out.Grow(len(runes))

	lastSignificant := func() rune {
		s := strings.TrimRight(out.String(), " \t")
		if s == "" {
			return 0
		}
		return rune(s[len(s)-1])
	}

	for i := 0; i < len(runes); {
		ch := runes[i]

		switch {
		case ch == '"':
			frag, next := scanQuoted(runes, i, '"')
			idx := st.Add(frag)
			out.WriteString(session.StringPlaceholder(idx))
			i = next

		case ch == '\'':
			frag, next := scanQuoted(runes, i, '\'')
			idx := st.Add(frag)
			out.WriteString(session.StringPlaceholder(idx))
			i = next

		case ch == '/' && i+1 < len(runes) && runes[i+1] == '/':
			j := i
			for j < len(runes) && runes[j] != '\n' {
				j++
			}
			out.WriteString(" ")
			i = j

		case ch == '/' && i+1 < len(runes) && runes[i+1] == '*':
			j := i + 2
			spanned := false
			for j+1 < len(runes) && !(runes[j] == '*' && runes[j+1] == '/') {
				if runes[j] == '\n' {
					spanned = true
				}
				j++
			}
			end := j + 2
			if end > len(runes) {
				end = len(runes)
			}
			if spanned {
				out.WriteString("\n")
			} else {
				out.WriteString(" ")
			}
			i = end

		case ch == '/' && isRegexContext(lastSignificant()):
			if frag, next, ok := tryScanRegex(runes, i); ok {
				idx := st.Add(frag)
				out.WriteString(session.StringPlaceholder(idx))
				i = next
				continue
			}
			out.WriteRune(ch)
			i++

		default:
			out.WriteRune(ch)
			i++
		}
	}

	return NormalizeReturn(out.String())
}

func isRegexContext(prev rune) bool {
	if prev == 0 {
		return true
	}
	return strings.ContainsRune(regexContextChars, prev)
}

// scanQuoted consumes a quoted literal starting at runes[start] (the
// opening quote char q), honoring backslash escapes, and returns the
// fragment (including both quote characters) plus the index just past it.
func scanQuoted(runes []rune, start int, q rune) (string, int) {
	i := start + 1
	for i < len(runes) {
		if runes[i] == '\\' && i+1 < len(runes) {
			i += 2
			continue
		}
		if runes[i] == q {
			i++
			break
		}
		i++
	}
	return string(runes[start:i]), i
}

// tryScanRegex attempts to consume a /regex/flags literal starting at
// runes[start]. It fails (ok=false) if no closing '/' is found before a
// newline, in which case the caller treats the '/' as ordinary division.
func tryScanRegex(runes []rune, start int) (string, int, bool) {
	i := start + 1
	inClass := false
	for i < len(runes) && runes[i] != '\n' {
		switch {
		case runes[i] == '\\' && i+1 < len(runes):
			i += 2
			continue
		case runes[i] == '[':
			inClass = true
		case runes[i] == ']':
			inClass = false
		case runes[i] == '/' && !inClass:
			j := i + 1
			for j < len(runes) && isRegexFlag(runes[j]) {
				j++
			}
			return string(runes[start:j]), j, true
		}
		i++
	}
	return "", start, false
}

func isRegexFlag(r rune) bool {
	return r == 'g' || r == 'i' || r == 'm'
}

// NormalizeReturn rewrites "return" followed by optional whitespace and a
// newline into "return " (spec §4.1), preventing the emitted target
// language's automatic semicolon insertion from splitting a wrapped return
// expression onto its own statement.
func NormalizeReturn(s string) string {
	runes := []rune(s)
	var out strings.Builder
	i := 0
	for i < len(runes) {
		if matchWord(runes, i, "return") {
			end := i + 6
			j := end
			sawNewline := false
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t' || runes[j] == '\n') {
				if runes[j] == '\n' {
					sawNewline = true
				}
				j++
			}
			out.WriteString("return")
			if sawNewline {
				out.WriteString(" ")
				i = j
				continue
			}
			i = end
			continue
		}
		out.WriteRune(runes[i])
		i++
	}
	return out.String()
}

func matchWord(runes []rune, i int, word string) bool {
	if i > 0 && isIdentRune(runes[i-1]) {
		return false
	}
	w := []rune(word)
	if i+len(w) > len(runes) {
		return false
	}
	for k, r := range w {
		if runes[i+k] != r {
			return false
		}
	}
	if i+len(w) < len(runes) && isIdentRune(runes[i+len(w)]) {
		return false
	}
	return true
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
