package ast_test

import (
	"strings"
	"testing"

	"github.com/bramblecore/pjstranspile/internal/ast"
	"github.com/bramblecore/pjstranspile/internal/render"
	"github.com/bramblecore/pjstranspile/internal/session"
)

func newCtx() *render.Context {
	return render.NewContext(session.Options{})
}

func TestRootWrapsClassesFirstThenStatements(t *testing.T) {
	root := &ast.Root{
		Classes:    []ast.Node{&literalNode{"CLASS"}},
		Statements: []ast.Node{&literalNode{"STMT"}},
	}
	out := root.Emit(newCtx())
	if !strings.Contains(out, "(function($p) {") {
		t.Errorf("missing host closure wrapper: %q", out)
	}
	classIdx := strings.Index(out, "CLASS")
	stmtIdx := strings.Index(out, "STMT")
	if classIdx < 0 || stmtIdx < 0 || classIdx > stmtIdx {
		t.Errorf("expected classes before statements, got %q", out)
	}
}

func TestStatementsBlockShadowsLocals(t *testing.T) {
	opts := session.Options{}
	class := session.NewClassInfo(0, "A", -1, false)
	class.Fields["x"] = false
	ctx := render.NewContext(opts)
	ctx.Push(render.NewClassScope(class))
	ctx.SelfDepth = 1

	block := &ast.StatementsBlock{
		Locals: []string{"x"},
		Statements: []ast.Node{
			&ast.Statement{Expr: &ast.Expression{Text: "x = 1"}},
		},
	}
	out := block.Emit(ctx)
	if strings.Contains(out, "$this_1") {
		t.Errorf("local x should shadow the class field, got %q", out)
	}
}

func TestExpressionResolvesClassField(t *testing.T) {
	class := session.NewClassInfo(0, "A", -1, false)
	class.Fields["count"] = false
	ctx := render.NewContext(session.Options{})
	ctx.SelfDepth = 1
	ctx.Push(render.NewClassScope(class))

	expr := &ast.Expression{Text: "count = count + 1"}
	out := expr.Emit(ctx)
	if !strings.Contains(out, "$this_1.count") {
		t.Errorf("expected field resolution, got %q", out)
	}
}

func TestExpressionResolvesGlobal(t *testing.T) {
	ctx := render.NewContext(session.Options{DefaultScope: map[string]bool{"println": true}})
	expr := &ast.Expression{Text: "println(x)"}
	out := expr.Emit(ctx)
	if !strings.Contains(out, "$p.println(x)") {
		t.Errorf("expected global resolution, got %q", out)
	}
}

func TestForEachExpressionEmitsIteratorProtocol(t *testing.T) {
	ctx := newCtx()
	forEach := &ast.ForEachExpression{
		IterName:  "$it0",
		VarName:   "item",
		Container: &ast.Expression{Text: "list"},
	}
	out := forEach.Emit(ctx)
	if !strings.Contains(out, "new $p.ObjectIterator(list)") || !strings.Contains(out, "$it0.hasNext()") {
		t.Errorf("unexpected for-each head: %q", out)
	}
}

func TestConstructorPrependsSuperCstrWhenAbsent(t *testing.T) {
	ctx := newCtx()
	cstr := &ast.Constructor{
		Arity: 0,
		Body:  &ast.StatementsBlock{},
	}
	out := cstr.Emit(ctx)
	if !strings.Contains(out, "$superCstr();") {
		t.Errorf("expected implicit $superCstr(), got %q", out)
	}
}

func TestConstructorDispatchHasOneBranchPerArity(t *testing.T) {
	var b strings.Builder
	cstrs := []*ast.Constructor{
		{Arity: 0, Body: &ast.StatementsBlock{}},
		{Arity: 1, Body: &ast.StatementsBlock{}},
	}
	_ = b
	ctx := newCtx()
	root := &ast.ClassBody{
		Class:        session.NewClassInfo(0, "A", -1, false),
		Constructors: cstrs,
	}
	out := root.Emit(ctx)
	if strings.Count(out, "$constr_0.apply") != 1 || strings.Count(out, "$constr_1.apply") != 1 {
		t.Errorf("expected exactly one dispatch branch per arity, got %q", out)
	}
}

type literalNode struct {
	text string
}

func (l *literalNode) Emit(ctx *render.Context) string { return l.text }
