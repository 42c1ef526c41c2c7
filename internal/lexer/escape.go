package lexer

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// escapedHex matches one escape unit produced by this package: "__x" plus
// four hex digits encoding a rune.
var escapedHex = regexp.MustCompile(`__x([0-9A-Fa-f]{4})`)

// NormalizeIdentifiers applies Unicode NFC normalization to the whole
// source before escaping, so two visually identical identifiers that
// happen to use different combining-character compositions escape (and
// therefore resolve) identically.
func NormalizeIdentifiers(src string) string {
	return norm.NFC.String(src)
}

// EscapeIdentifiers rewrites `$` to a reserved hex escape so it survives
// every downstream regex-driven pass unmolested (spec §4.1). Any sequence
// that already looks like one of this package's own escapes is itself
// escaped first ("escape of the escape"), so UnescapeIdentifiers can
// invert both in a single pass without ambiguity.
func EscapeIdentifiers(src string) string {
	src = escapedHex.ReplaceAllString(src, "__x005F_x$1")
	src = regexp.MustCompile(`\$`).ReplaceAllString(src, "__x0024")
	return src
}

// UnescapeIdentifiers reverses EscapeIdentifiers (and any `__xHHHH`
// sequence already present in the original source) in one left-to-right,
// non-overlapping pass, per spec §4.1.
func UnescapeIdentifiers(src string) string {
	return escapedHex.ReplaceAllStringFunc(src, func(m string) string {
		groups := escapedHex.FindStringSubmatch(m)
		code, err := strconv.ParseUint(groups[1], 16, 32)
		if err != nil {
			return m
		}
		return string(rune(code))
	})
}

// EscapeHex renders the reserved escape for a single rune, as used when
// constructing synthetic identifiers that must survive re-escaping.
func EscapeHex(r rune) string {
	return fmt.Sprintf("__x%04X", r)
}
