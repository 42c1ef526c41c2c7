package atomize

import (
	"regexp"
	"strconv"

	"github.com/bramblecore/pjstranspile/internal/session"
)

// placeholderRE matches any "K N" atom reference token, for any kind tag.
var placeholderRE = regexp.MustCompile(`"([A-I]) (\d+)"`)

// Expand recursively substitutes every "K N" placeholder in s with its
// recorded atom text, for any kind in kinds (or every kind, if kinds is
// empty). This is how the expression transformer (spec §4.5) pulls a
// bracket atom's content back into view before rewriting it.
func Expand(s string, at *session.AtomTable, kinds ...session.AtomKind) string {
	allowed := make(map[session.AtomKind]bool, len(kinds))
	for _, k := range kinds {
		allowed[k] = true
	}

	for {
		expanded, changed := expandOnce(s, at, allowed)
		if !changed {
			return expanded
		}
		s = expanded
	}
}

func expandOnce(s string, at *session.AtomTable, allowed map[session.AtomKind]bool) (string, bool) {
	changed := false
	out := placeholderRE.ReplaceAllStringFunc(s, func(m string) string {
		groups := placeholderRE.FindStringSubmatch(m)
		kind := session.AtomKind(groups[1][0])
		if len(allowed) > 0 && !allowed[kind] {
			return m
		}
		idx, err := strconv.Atoi(groups[2])
		if err != nil {
			return m
		}
		atom := at.Get(idx)
		changed = true
		return atom.Text
	})
	return out, changed
}
