package ast

import (
	"fmt"
	"strings"

	"github.com/bramblecore/pjstranspile/internal/render"
)

// VarDefinition is one name[=value] declarator (spec §3): if value is
// absent, emits the declared type's default literal (0 for numeric
// types, false for boolean, '\0' for char, null for everything else).
type VarDefinition struct {
	Name         string
	Value        string // already-rendered expression text, "" if absent
	DeclaredType string
}

func defaultLiteral(declaredType string) string {
	switch declaredType {
	case "int", "long", "short", "byte", "float", "double":
		return "0"
	case "boolean":
		return "false"
	case "char":
		return "'\\0'"
	default:
		return "null"
	}
}

func (v VarDefinition) value() string {
	if v.Value != "" {
		return v.Value
	}
	return defaultLiteral(v.DeclaredType)
}

// ClassField is Field/ClassField (spec §3, §4.6 step 5). Non-static
// fields assign directly on the self pointer; static fields get a
// lazily-initialized backing slot on the class plus a get/set property
// forwarder on $this_K so instance code can read/write the class-level
// value through the ordinary field syntax.
type ClassField struct {
	Definitions  []VarDefinition
	DeclaredType string
	IsStatic     bool
}

func (f *ClassField) Emit(ctx *render.Context) string {
	return f.emit(ctx, "", "this")
}

func (f *ClassField) emit(ctx *render.Context, className, selfID string) string {
	var b strings.Builder
	for _, d := range f.Definitions {
		d.DeclaredType = f.DeclaredType
		if !f.IsStatic || className == "" {
			fmt.Fprintf(&b, "%s.%s = %s;\n", selfID, d.Name, d.value())
			continue
		}
		fmt.Fprintf(&b, "if (!(%q in %s)) { %s.%s = %s; }\n", d.Name, className, className, d.Name, d.value())
		fmt.Fprintf(&b, "$p.defineProperty(%s, %q, { get: function() { return %s.%s; }, set: function(v) { %s.%s = v; } });\n",
			selfID, d.Name, className, d.Name, className, d.Name)
	}
	return b.String()
}

// Var is the Var node (spec §3): a `var` declaration list at statement
// scope (not inside a class body).
type Var struct {
	Definitions  []VarDefinition
	DeclaredType string
}

func (v *Var) Emit(ctx *render.Context) string {
	names := make([]string, len(v.Definitions))
	for i, d := range v.Definitions {
		d.DeclaredType = v.DeclaredType
		names[i] = d.Name + " = " + d.value()
	}
	return "var " + strings.Join(names, ", ") + ";"
}
