package errors_test

import (
	"strings"
	"testing"

	internalerrors "github.com/bramblecore/pjstranspile/internal/errors"
)

func TestPositionAt(t *testing.T) {
	src := "line one\nline two\nline three"
	tests := []struct {
		offset int
		want   internalerrors.Position
	}{
		{0, internalerrors.Position{Line: 1, Column: 1}},
		{4, internalerrors.Position{Line: 1, Column: 5}},
		{9, internalerrors.Position{Line: 2, Column: 1}},
		{18, internalerrors.Position{Line: 3, Column: 1}},
	}
	for _, tt := range tests {
		got := internalerrors.PositionAt(src, tt.offset)
		if got != tt.want {
			t.Errorf("PositionAt(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestUnbalancedBracketsFormat(t *testing.T) {
	src := "class A { void f() {"
	err := internalerrors.UnbalancedBrackets(src, "A.pde", 20)
	msg := err.Format(false)
	if !strings.Contains(msg, "unbalanced brackets at offset 20") {
		t.Errorf("Format() missing message, got:\n%s", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Errorf("Format() missing caret, got:\n%s", msg)
	}
	if !strings.Contains(msg, "A.pde") {
		t.Errorf("Format() missing file name, got:\n%s", msg)
	}
}

func TestRecoverConvertsAssertion(t *testing.T) {
	run := func() (err error) {
		defer internalerrors.Recover(&err)
		internalerrors.Assertf("missing atom %d", 7)
		return nil
	}
	err := run()
	if err == nil {
		t.Fatal("expected an error from Recover")
	}
	if !strings.Contains(err.Error(), "missing atom 7") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestRecoverRepanicsOtherValues(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected non-assertion panic to propagate")
		}
	}()
	run := func() (err error) {
		defer internalerrors.Recover(&err)
		panic("boom")
	}
	_ = run()
}
