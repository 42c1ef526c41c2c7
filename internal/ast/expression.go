package ast

import (
	"regexp"

	"github.com/bramblecore/pjstranspile/internal/render"
)

// identRE matches a bare identifier not immediately preceded by a `.`
// (so `obj.field` leaves `field` alone — only the receiver-less name
// gets resolved through the context stack) and captures whether it's
// immediately followed by `(` (a call).
var identRE = regexp.MustCompile(`(^|[^.\w])(\w+)(\()?`)

var embedRE = regexp.MustCompile(`!(\d+)`)

// Expression is the Expression node (spec §3): already-lowered
// (cast/array/instanceof/etc rewritten) text with free identifiers still
// literal, plus a list of embedded sub-nodes referenced inline as `!N`
// placeholders (inline classes, anonymous functions, other expressions
// built bottom-up by the expression transformer). Emit resolves every
// free identifier against ctx and restores each `!N` placeholder with
// its sub-node's own Emit.
type Expression struct {
	Text   string
	Embeds []Node
}

func (e *Expression) Emit(ctx *render.Context) string {
	text := resolveIdentifiers(e.Text, ctx)
	return embedRE.ReplaceAllStringFunc(text, func(m string) string {
		groups := embedRE.FindStringSubmatch(m)
		idx := atoiSafe(groups[1])
		if idx < 0 || idx >= len(e.Embeds) {
			return m
		}
		return e.Embeds[idx].Emit(ctx)
	})
}

func resolveIdentifiers(text string, ctx *render.Context) string {
	return identRE.ReplaceAllStringFunc(text, func(m string) string {
		groups := identRE.FindStringSubmatch(m)
		lead, name, call := groups[1], groups[2], groups[3]
		if isKeyword(name) {
			return m
		}
		if name == "this" {
			if call != "" {
				return lead + ctx.SelfID() + ".$self" + call
			}
			return lead + ctx.SelfID()
		}
		return lead + ctx.Identifier(name) + call
	})
}

func isKeyword(s string) bool {
	switch s {
	case "if", "else", "for", "while", "do", "switch", "case", "default",
		"break", "continue", "return", "new", "true", "false", "null",
		"var", "function", "throw", "try", "catch", "finally", "in",
		"typeof", "instanceof", "void", "delete":
		return true
	}
	return false
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// InlineClass emits `new (body)` for an anonymous-class-new expression
// (spec §3/§4.5): `new T() { body }` lowers to a synthetic ClassBody
// whose name is `T$classID` and whose "implements T" relationship the
// weighter records, referenced here through its Body.
type InlineClass struct {
	Body Node // *ClassBody for the synthetic T$classID class
}

func (i *InlineClass) Emit(ctx *render.Context) string {
	return "new (" + i.Body.Emit(ctx) + ")"
}

// InlineObject is `{a: 1, b: 2}` / `{1, 2}` object-literal syntax (spec
// §3): comma-separated label:value pairs, label omitted for purely
// positional/array-like members.
type InlineObject struct {
	Labels []string // "" for an unlabeled (array-style) member
	Values []Node
}

func (o *InlineObject) Emit(ctx *render.Context) string {
	out := "{"
	for i, v := range o.Values {
		if i > 0 {
			out += ", "
		}
		if o.Labels[i] != "" {
			out += o.Labels[i] + ": "
		}
		out += v.Emit(ctx)
	}
	return out + "}"
}
