package lexer_test

import (
	"testing"

	"github.com/bramblecore/pjstranspile/internal/lexer"
	"github.com/bramblecore/pjstranspile/internal/session"
)

func TestReinjectRestoresLiteralsAndUnescapes(t *testing.T) {
	var st session.StringTable
	idx := st.Add(`"hello world"`)

	rendered := "println(" + session.StringPlaceholder(idx) + "); var __x0024foo = 1;"
	out := lexer.Reinject(rendered, &st)

	want := `println("hello world"); var $foo = 1;`
	if out != want {
		t.Errorf("Reinject() = %q, want %q", out, want)
	}
}
