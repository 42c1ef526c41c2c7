package decl

import (
	"regexp"
	"strings"
)

var fieldPrefixRE = regexp.MustCompile(`^\s*` + modifiers + `(` + dottedType + `)\s+(.+)$`)
var fieldNameRE = regexp.MustCompile(`^\s*(\w+)((?:\s*"C\s*\d+")*)\s*(?:=\s*(.+))?$`)

// FieldGroup is one `type name [= expr], name2 [= expr2];` statement.
type FieldGroup struct {
	IsStatic bool
	Type     string
	Names    []FieldDef
}

// FieldDef is a single comma-separated declarator within a FieldGroup.
type FieldDef struct {
	Name  string
	Value string // empty if no initializer
}

// ExtractFields splits the declaration extractor's leftover body text on
// top-level semicolons and parses each fragment that matches the field
// grammar (spec §4.4: "attribute+type prefix followed by one or more
// name [= expr] separated by ,"). Fragments that don't match (blank
// lines, free statements between declarations) are returned unparsed as
// "misc" text for the class body assembler to emit verbatim.
func ExtractFields(body string) (fields []FieldGroup, misc []string) {
	for _, stmt := range splitTopLevel(body, ';') {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		m := fieldPrefixRE.FindStringSubmatch(stmt)
		if m == nil {
			misc = append(misc, stmt)
			continue
		}

		group := FieldGroup{
			IsStatic: strings.Contains(stmt, "static "),
			Type:     m[1],
		}
		ok := true
		for _, part := range splitTopLevel(m[2], ',') {
			nm := fieldNameRE.FindStringSubmatch(strings.TrimSpace(part))
			if nm == nil {
				ok = false
				break
			}
			group.Names = append(group.Names, FieldDef{Name: nm[1], Value: strings.TrimSpace(nm[3])})
		}
		if !ok || len(group.Names) == 0 {
			misc = append(misc, stmt)
			continue
		}
		fields = append(fields, group)
	}
	return fields, misc
}

// splitTopLevel splits on sep, ignoring any sep found inside a quoted
// atom placeholder token (so `"B 3"` never gets split on a stray comma
// that might appear inside the original bracket text's own atom index,
// which it never does, but this keeps the split strictly text-based and
// quote-aware for defense in depth).
func splitTopLevel(s string, sep byte) []string {
	var out []string
	start := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuote = !inQuote
		case sep:
			if !inQuote {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
