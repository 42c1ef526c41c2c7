package ast

import (
	"fmt"
	"strings"

	"github.com/bramblecore/pjstranspile/internal/render"
)

// Params is the Params/Param node (spec §3): a positional parameter
// list, with an optional trailing varargs parameter that gets a slice
// binding prepended inside the body.
type Params struct {
	Names      []string
	VarargName string // "" if no varargs param
}

// Bind declares every parameter (and the varargs name, if any) as a
// local in scope, and returns the varargs-slice preamble to prepend to
// the body when one is present.
func (p Params) Bind(scope *render.LocalScope) string {
	for _, n := range p.Names {
		scope.Declare(n)
	}
	if p.VarargName == "" {
		return ""
	}
	scope.Declare(p.VarargName)
	start := len(p.Names)
	return fmt.Sprintf("var %s = Array.prototype.slice.call(arguments, %d);\n", p.VarargName, start)
}

func (p Params) signature() string {
	all := append(append([]string{}, p.Names...))
	if p.VarargName != "" {
		all = append(all, p.VarargName)
	}
	return strings.Join(all, ", ")
}

// ClassMethod is Method/ClassMethod (spec §3): sets param names into the
// resolution context, emits a function, registers via addMethod.
type ClassMethod struct {
	Name       string
	MethodID   string // name$arity[_overloadN], assigned by the class-body assembler
	Params     Params
	Body       Node // *StatementsBlock
	IsStatic   bool
	HasVarargs bool
}

func (m *ClassMethod) Emit(ctx *render.Context) string {
	return m.emit(ctx, "", "this")
}

func (m *ClassMethod) emit(ctx *render.Context, className, selfID string) string {
	local := render.NewLocalScope()
	preamble := m.Params.Bind(local)
	ctx.Push(local)
	body := m.Body.Emit(ctx)
	ctx.Pop()

	fn := fmt.Sprintf("function %s(%s) {\n%s%s\n}", m.MethodID, m.Params.signature(), preamble, body)

	if m.IsStatic && className != "" {
		return fmt.Sprintf("$p.addMethod(%s, %q, %s, %t);\n$p.addMethod(%s, %q, %s, %t);",
			className, m.Name, fn, m.HasVarargs, selfID, m.Name, fn, m.HasVarargs)
	}
	return fmt.Sprintf("$p.addMethod(%s, %q, %s, %t);", selfID, m.Name, fn, m.HasVarargs)
}

// GlobalMethod is a top-level function declared outside any class; it
// resolves to the host closure's own local scope, not $this_K.
type GlobalMethod struct {
	Name   string
	Params Params
	Body   Node
}

func (g *GlobalMethod) Emit(ctx *render.Context) string {
	local := render.NewLocalScope()
	preamble := g.Params.Bind(local)
	ctx.Push(local)
	body := g.Body.Emit(ctx)
	ctx.Pop()
	return fmt.Sprintf("function %s(%s) {\n%s%s\n}", g.Name, g.Params.signature(), preamble, body)
}

// Function is the anonymous Function node (spec §3): name?, params,
// body, emitted as a function expression.
type Function struct {
	Name   string // "" for an anonymous function expression
	Params Params
	Body   Node
}

func (f *Function) Emit(ctx *render.Context) string {
	local := render.NewLocalScope()
	preamble := f.Params.Bind(local)
	ctx.Push(local)
	body := f.Body.Emit(ctx)
	ctx.Pop()
	return fmt.Sprintf("function %s(%s) {\n%s%s\n}", f.Name, f.Params.signature(), preamble, body)
}

// Constructor emits $constr_N where N is the declared arity (spec §3,
// §4.6 step 8); prepends $superCstr() when the body contains neither a
// super() nor this() call, per spec §4.6 step 2's dispatcher contract.
type Constructor struct {
	Arity        int
	HasVarargs   bool
	Params       Params
	Body         Node // *StatementsBlock
	CallsSuper   bool // body contains $superCstr(...) (lowered from super(...))
	CallsThis    bool // body contains $constr(...) (lowered from this(...))
}

func (c *Constructor) Emit(ctx *render.Context) string {
	return c.emit(ctx, "this")
}

func (c *Constructor) emit(ctx *render.Context, selfID string) string {
	local := render.NewLocalScope()
	preamble := c.Params.Bind(local)
	ctx.Push(local)
	body := c.Body.Emit(ctx)
	ctx.Pop()

	if !c.CallsSuper && !c.CallsThis {
		preamble = "$superCstr();\n" + preamble
	}
	return fmt.Sprintf("function $constr_%d(%s) {\n%s%s\n}", c.Arity, c.Params.signature(), preamble, body)
}
