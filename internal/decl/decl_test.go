package decl_test

import (
	"testing"

	"github.com/bramblecore/pjstranspile/internal/atomize"
	"github.com/bramblecore/pjstranspile/internal/decl"
	"github.com/bramblecore/pjstranspile/internal/session"
)

func TestExtractClassWithConstructorAndMethod(t *testing.T) {
	var at session.AtomTable
	src := `class A extends B implements C { A(){} int f(int x){ return x; } }`
	rootIdx, err := atomize.Atomize(src, &at, src, "t.pde")
	if err != nil {
		t.Fatalf("Atomize() error = %v", err)
	}
	root := at.Get(rootIdx)

	topLevel := decl.Extract(root.Text, "", &at)
	if len(topLevel.Headers) != 1 {
		t.Fatalf("expected 1 top-level header (the class), got %d: %+v", len(topLevel.Headers), topLevel.Headers)
	}
	classHeader := topLevel.Headers[0]
	if classHeader.Kind != session.KindClass || classHeader.Name != "A" {
		t.Fatalf("unexpected class header: %+v", classHeader)
	}
	if len(classHeader.Extends) != 1 || classHeader.Extends[0] != "B" {
		t.Errorf("Extends = %v, want [B]", classHeader.Extends)
	}
	if len(classHeader.Implements) != 1 || classHeader.Implements[0] != "C" {
		t.Errorf("Implements = %v, want [C]", classHeader.Implements)
	}

	body := at.Get(classHeader.BodyAtom).Text
	inner := decl.Extract(body, "A", &at)

	var sawCstr, sawMethod bool
	for _, h := range inner.Headers {
		switch h.Kind {
		case session.KindConstructor:
			sawCstr = true
			if h.Name != "A" {
				t.Errorf("constructor name = %q, want A", h.Name)
			}
		case session.KindMethod:
			sawMethod = true
			if h.Name != "f" || h.ReturnType != "int" {
				t.Errorf("method = %+v, want name=f returnType=int", h)
			}
		}
	}
	if !sawCstr {
		t.Error("expected a constructor header")
	}
	if !sawMethod {
		t.Error("expected a method header")
	}
}

func TestExtractFunctionHeader(t *testing.T) {
	var at session.AtomTable
	src := `function add(a, b) { return a + b; }`
	rootIdx, err := atomize.Atomize(src, &at, src, "t.pde")
	if err != nil {
		t.Fatalf("Atomize() error = %v", err)
	}
	root := at.Get(rootIdx)

	result := decl.Extract(root.Text, "", &at)
	if len(result.Headers) != 1 || result.Headers[0].Kind != session.KindFunction {
		t.Fatalf("expected one function header, got %+v", result.Headers)
	}
	if result.Headers[0].Name != "add" {
		t.Errorf("function name = %q, want add", result.Headers[0].Name)
	}
}

func TestExtractFields(t *testing.T) {
	groups, misc := decl.ExtractFields(`int x = 5, y; static float f;`)
	if len(groups) != 2 {
		t.Fatalf("expected 2 field groups, got %d (misc=%v)", len(groups), misc)
	}
	if groups[0].Type != "int" || len(groups[0].Names) != 2 {
		t.Errorf("group 0 = %+v", groups[0])
	}
	if groups[0].Names[0].Name != "x" || groups[0].Names[0].Value != "5" {
		t.Errorf("names[0] = %+v", groups[0].Names[0])
	}
	if groups[0].Names[1].Name != "y" || groups[0].Names[1].Value != "" {
		t.Errorf("names[1] = %+v", groups[0].Names[1])
	}
	if !groups[1].IsStatic || groups[1].Type != "float" {
		t.Errorf("group 1 = %+v", groups[1])
	}
}
