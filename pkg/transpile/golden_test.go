package transpile_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/bramblecore/pjstranspile/internal/hostlib"
	"github.com/bramblecore/pjstranspile/pkg/transpile"
)

func TestMain(m *testing.M) {
	snaps.RunTests(m)
}

func defaultOptions() transpile.Options {
	scope := make(map[string]bool, len(hostlib.Globals))
	for n := range hostlib.Globals {
		scope[n] = true
	}
	for n := range hostlib.PConstants {
		scope[n] = true
	}
	return transpile.Options{DefaultScope: scope, File: "t.pde"}
}

// The first eight tests below each match one concrete scenario from
// spec §8; the last two cover string-literal fidelity and the
// unbalanced-brackets error.

func TestSimpleVarAtStatementScope(t *testing.T) {
	out, err := transpile.Transpile("int x = 5;", defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, "var x = 5") {
		t.Errorf("expected statement-scope var declaration, got %q", out)
	}
	snaps.MatchSnapshot(t, out)
}

func TestConstructorOverloadDispatch(t *testing.T) {
	out, err := transpile.Transpile("class A { A(){} A(int x){} }", defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	for _, want := range []string{"function $constr_0()", "function $constr_1(x)", "arguments.length === 0", "arguments.length === 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	snaps.MatchSnapshot(t, out)
}

func TestSubclassSuperCallAndBaseMetadata(t *testing.T) {
	out, err := transpile.Transpile("class B extends A { B(){ super(); } }", defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, "$superCstr()") {
		t.Errorf("expected $superCstr() call in constructor body, got %q", out)
	}
	if !strings.Contains(out, "B.$base = A") {
		t.Errorf("expected class-metadata line B.$base = A, got %q", out)
	}
	snaps.MatchSnapshot(t, out)
}

func TestColorLiteral(t *testing.T) {
	out, err := transpile.Transpile("color c = #FF8040;", defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, "0xFFFF8040") {
		t.Errorf("expected hex color literal, got %q", out)
	}
}

func TestIntCastRewrite(t *testing.T) {
	out, err := transpile.Transpile("int y = (int)(x+1);", defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, "__int_cast((x+1))") {
		t.Errorf("expected int-cast rewrite, got %q", out)
	}
}

func TestForEachLoweredToIteratorProtocol(t *testing.T) {
	out, err := transpile.Transpile("for (int i : list) println(i);", defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, "new $p.ObjectIterator(") || !strings.Contains(out, ".hasNext()") {
		t.Errorf("expected iterator-protocol for-each head, got %q", out)
	}
}

func TestMethodRenameRewrite(t *testing.T) {
	out, err := transpile.Transpile(`s.replace("a","b");`, defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, `__replace(s,"a","b")`) {
		t.Errorf("expected __replace rewrite, got %q", out)
	}
}

func TestClassEmissionOrderFollowsWeight(t *testing.T) {
	src := "class C extends B {} class B extends A {} class A {}"
	out, err := transpile.Transpile(src, defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	aIdx := strings.Index(out, "var A")
	bIdx := strings.Index(out, "var B")
	cIdx := strings.Index(out, "var C")
	if !(aIdx >= 0 && aIdx < bIdx && bIdx < cIdx) {
		t.Errorf("expected emission order A, B, C regardless of declaration order, got offsets a=%d b=%d c=%d in:\n%s", aIdx, bIdx, cIdx, out)
	}
}

func TestStringLiteralFidelity(t *testing.T) {
	out, err := transpile.Transpile(`String greeting = "hello, \"world\"";`, defaultOptions())
	if err != nil {
		t.Fatalf("Transpile() error = %v", err)
	}
	if !strings.Contains(out, `"hello, \"world\""`) {
		t.Errorf("expected literal string round-trip, got %q", out)
	}
}

func TestUnbalancedBracketsIsAFatalError(t *testing.T) {
	_, err := transpile.Transpile("class A { void f() {", defaultOptions())
	if err == nil {
		t.Fatal("expected an unbalanced-brackets error, got nil")
	}
	if !strings.Contains(err.Error(), "unbalanced brackets") {
		t.Errorf("unexpected error: %v", err)
	}
}
