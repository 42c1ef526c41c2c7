package ast

import (
	"strings"

	"github.com/bramblecore/pjstranspile/internal/render"
)

// Statement wraps a single expression statement (spec §3).
type Statement struct {
	Expr Node
}

func (s *Statement) Emit(ctx *render.Context) string {
	return s.Expr.Emit(ctx) + ";"
}

// StatementsBlock is a `{ ... }` block (spec §3): computes its own
// local-name set (every Var/VarDefinition name declared directly inside
// it) and pushes a shadowing scope before emitting its statements.
type StatementsBlock struct {
	Locals     []string
	Statements []Node
}

func (b *StatementsBlock) Emit(ctx *render.Context) string {
	scope := render.NewLocalScope(b.Locals...)
	for _, s := range b.Statements {
		if v, ok := s.(*Var); ok {
			for _, d := range v.Definitions {
				scope.Declare(d.Name)
			}
		}
	}
	ctx.Push(scope)
	defer ctx.Pop()

	var out strings.Builder
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString(s.Emit(ctx))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// PrefixStatement covers ForStatement/SwitchCase and the other
// keyword-led statements (spec §3): a fixed prefix keyword/text followed
// by an optional parenthesized head and then its body. A for-loop head
// node (ForExpression, ForInExpression, ForEachExpression) emits its own
// `for (...)` and replaces the prefix. Catch clauses and labels have
// their own nodes (CatchStatement, Label).
type PrefixStatement struct {
	Prefix string // e.g. "if", "while", "case 1:"
	Arg    Node   // head expression/container, nil if none (e.g. "else", "default:")
	Body   Node   // nil for a case label
}

func (p *PrefixStatement) Emit(ctx *render.Context) string {
	body := ""
	if p.Body != nil {
		body = " " + p.Body.Emit(ctx)
	}
	switch p.Arg.(type) {
	case *ForExpression, *ForInExpression, *ForEachExpression:
		return p.Arg.Emit(ctx) + body
	}
	if p.Arg == nil {
		return p.Prefix + body
	}
	return p.Prefix + "(" + p.Arg.Emit(ctx) + ")" + body
}

// CatchStatement binds its exception name as a local visible only in
// its body (spec §4.6's "catch params" shadowing tier).
type CatchStatement struct {
	ExceptionName string
	Body          Node // *StatementsBlock
}

func (c *CatchStatement) Emit(ctx *render.Context) string {
	scope := render.NewLocalScope(c.ExceptionName)
	ctx.Push(scope)
	defer ctx.Pop()
	return "catch (" + c.ExceptionName + ") " + c.Body.Emit(ctx)
}

// Label is a bare `name:` prefix ahead of a loop or block (spec §3).
type Label struct {
	Name string
	Body Node
}

func (l *Label) Emit(ctx *render.Context) string {
	return l.Name + ": " + l.Body.Emit(ctx)
}

// ForExpression is the classic `init; cond; step` loop head (spec
// §4.5).
type ForExpression struct {
	Init      Node
	Condition Node
	Step      Node
}

func (f *ForExpression) Emit(ctx *render.Context) string {
	var init, cond, step string
	if f.Init != nil {
		init = f.Init.Emit(ctx)
	}
	if f.Condition != nil {
		cond = f.Condition.Emit(ctx)
	}
	if f.Step != nil {
		step = f.Step.Emit(ctx)
	}
	return "for (" + init + "; " + cond + "; " + step + ")"
}

// ForInExpression is key enumeration: `for (x in container)` (spec
// §4.5).
type ForInExpression struct {
	VarName   string
	Container Node
}

func (f *ForInExpression) Emit(ctx *render.Context) string {
	return "for (" + f.VarName + " in " + f.Container.Emit(ctx) + ")"
}

// ForEachExpression is `for (T x : container)`, lowered to an explicit
// iterator protocol (spec §4.5): `$itN = new $p.ObjectIterator(container)`
// plus a `hasNext() && ((var = it.next()) || true)` advance in the
// condition slot.
type ForEachExpression struct {
	IterName  string // $itN
	VarName   string
	Container Node
}

func (f *ForEachExpression) Emit(ctx *render.Context) string {
	init := "var " + f.IterName + " = new $p.ObjectIterator(" + f.Container.Emit(ctx) + ")"
	cond := f.IterName + ".hasNext() && ((" + f.VarName + " = " + f.IterName + ".next()) || true)"
	return "for (" + init + "; " + cond + "; )"
}
