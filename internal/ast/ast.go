// Package ast defines the node types built from the atom table and
// declaration headers (spec §3), and the Emit contract each one fulfills
// during rendering (stage 10). Nodes are created bottom-up; metadata
// (base/interface resolution, weight) is attached after the whole tree
// exists; rendering is the final, read-only traversal.
package ast

import "github.com/bramblecore/pjstranspile/internal/render"

// Node is any AST variant. Emit renders it against the renderer's current
// name-resolution context; nodes that introduce new scope push a frame
// onto ctx before emitting their children and pop it before returning.
type Node interface {
	Emit(ctx *render.Context) string
}

// Root wraps every top-level statement (spec §3: "wraps classes-first then
// other statements inside a single host-library closure parameterized by
// $p").
type Root struct {
	Classes    []Node // Class / Interface, already ordered by descending weight
	Statements []Node
}

func (r *Root) Emit(ctx *render.Context) string {
	var body string
	for _, c := range r.Classes {
		body += c.Emit(ctx) + "\n"
	}
	for _, s := range r.Statements {
		body += s.Emit(ctx) + "\n"
	}
	return "// this code was autogenerated from PDE source - please do not edit\n" +
		"(function($p) {\n" + body + "})"
}
