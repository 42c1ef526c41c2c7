package atomize_test

import (
	"testing"

	"github.com/bramblecore/pjstranspile/internal/atomize"
	"github.com/bramblecore/pjstranspile/internal/session"
)

func TestAtomizeNestedBrackets(t *testing.T) {
	var at session.AtomTable
	rootIdx, err := atomize.Atomize(`f(a, {1, 2}[0]);`, &at, "f(a, {1, 2}[0]);", "t.pde")
	if err != nil {
		t.Fatalf("Atomize() error = %v", err)
	}

	root := at.Get(rootIdx)
	if root.Kind != session.KindBrace {
		t.Errorf("root kind = %c, want %c", root.Kind, session.KindBrace)
	}
	if root.Text != `f"B 2";` {
		t.Errorf("root text = %q", root.Text)
	}

	paren := at.Get(2)
	if paren.Text != `(a, "A 0""C 1")` {
		t.Errorf("paren atom = %q", paren.Text)
	}

	bracket := at.Get(1)
	if bracket.Text != `[0]` {
		t.Errorf("bracket atom = %q", bracket.Text)
	}

	brace := at.Get(0)
	if brace.Text != `{1, 2}` {
		t.Errorf("brace atom = %q", brace.Text)
	}
}

func TestAtomizeUnbalancedReturnsError(t *testing.T) {
	var at session.AtomTable
	_, err := atomize.Atomize(`void f() { if (x) { }`, &at, `void f() { if (x) { }`, "t.pde")
	if err == nil {
		t.Fatal("expected an unbalanced-brackets error")
	}
}

func TestExpandRecursively(t *testing.T) {
	var at session.AtomTable
	rootIdx, err := atomize.Atomize(`a({b:1});`, &at, `a({b:1});`, "t.pde")
	if err != nil {
		t.Fatalf("Atomize() error = %v", err)
	}
	root := at.Get(rootIdx)
	got := atomize.Expand(root.Text, &at)
	if got != `a({b:1});` {
		t.Errorf("Expand() = %q, want %q", got, `a({b:1});`)
	}
}
