package lexer_test

import (
	"testing"

	"github.com/bramblecore/pjstranspile/internal/lexer"
)

func TestStripGenericsSimple(t *testing.T) {
	tests := []struct{ in, want string }{
		{"List<Integer> xs;", "List xs;"},
		{"Map<String, List<Integer>> m;", "Map m;"},
		{"ArrayList<? extends Number> n;", "ArrayList n;"},
		{"T[] extends U<T>[] arr;", "T[] extends U[] arr;"},
		{"a << b;", "a << b;"},
		{"if (x <= y) {}", "if (x <= y) {}"},
	}
	for _, tt := range tests {
		got := lexer.StripGenerics(tt.in)
		if got != tt.want {
			t.Errorf("StripGenerics(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripGenericsIdempotent(t *testing.T) {
	in := "Map<String, List<Map<Integer, String>>> deep;"
	once := lexer.StripGenerics(in)
	twice := lexer.StripGenerics(once)
	if once != twice {
		t.Errorf("StripGenerics is not idempotent: %q != %q", once, twice)
	}
}
