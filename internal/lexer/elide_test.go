package lexer_test

import (
	"strings"
	"testing"

	"github.com/bramblecore/pjstranspile/internal/lexer"
	"github.com/bramblecore/pjstranspile/internal/session"
)

func TestElideStringsAndComments(t *testing.T) {
	var st session.StringTable
	src := `println("hello"); // say hi
/* block
comment */
char c = 'x';`

	out := lexer.Elide(lexer.NormalizeLineEndings(src), &st)

	if strings.Contains(out, "hello") {
		t.Errorf("expected string literal elided, got: %s", out)
	}
	if strings.Contains(out, "say hi") {
		t.Errorf("expected line comment elided, got: %s", out)
	}
	if strings.Contains(out, "block") {
		t.Errorf("expected block comment elided, got: %s", out)
	}
	if st.Len() != 2 {
		t.Fatalf("expected 2 string-table entries, got %d", st.Len())
	}
	if frag, _ := st.Get(0); frag != `"hello"` {
		t.Errorf("entry 0 = %q, want %q", frag, `"hello"`)
	}
	if frag, _ := st.Get(1); frag != `'x'` {
		t.Errorf("entry 1 = %q, want %q", frag, `'x'`)
	}
}

func TestElidePreservesLineCountAcrossBlockComment(t *testing.T) {
	var st session.StringTable
	src := "a;\n/* multi\nline */\nb;"
	out := lexer.Elide(lexer.NormalizeLineEndings(src), &st)
	if strings.Count(out, "\n") != strings.Count(src, "\n") {
		t.Errorf("line count changed: got %d newlines, want %d\noutput: %q", strings.Count(out, "\n"), strings.Count(src, "\n"), out)
	}
}

func TestElideRegexRequiresContextChar(t *testing.T) {
	var st session.StringTable
	// '=' before '/' marks regex context; division elsewhere is untouched.
	src := `x = /ab+c/; y = a / b;`
	out := lexer.Elide(lexer.NormalizeLineEndings(src), &st)
	if st.Len() != 1 {
		t.Fatalf("expected exactly one regex literal elided, got %d entries: %q", st.Len(), out)
	}
	if frag, _ := st.Get(0); frag != "/ab+c/" {
		t.Errorf("entry 0 = %q, want %q", frag, "/ab+c/")
	}
	if !strings.Contains(out, "a / b") {
		t.Errorf("expected plain division left untouched, got: %s", out)
	}
}

func TestNormalizeReturn(t *testing.T) {
	in := "return\n  5;"
	out := lexer.NormalizeReturn(in)
	if out != "return 5;" {
		t.Errorf("NormalizeReturn(%q) = %q, want %q", in, out, "return 5;")
	}
}

func TestNormalizeReturnLeavesInlineReturnAlone(t *testing.T) {
	in := "return 5;"
	if out := lexer.NormalizeReturn(in); out != in {
		t.Errorf("NormalizeReturn(%q) = %q, want unchanged", in, out)
	}
}
