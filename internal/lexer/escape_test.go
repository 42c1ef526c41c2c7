package lexer_test

import (
	"testing"

	"github.com/bramblecore/pjstranspile/internal/lexer"
)

func TestEscapeUnescapeDollarRoundTrip(t *testing.T) {
	in := "var $foo = $bar;"
	escaped := lexer.EscapeIdentifiers(in)
	if escaped == in {
		t.Fatalf("expected $ to be escaped, got unchanged: %q", escaped)
	}
	got := lexer.UnescapeIdentifiers(escaped)
	if got != in {
		t.Errorf("round trip mismatch: got %q, want %q", got, in)
	}
}

func TestEscapeOfExistingEscapeRoundTrips(t *testing.T) {
	// A literal __xHHHH already present in the source must survive
	// untouched end to end, per spec §8 (identifier escape round-trip).
	in := "var __x0041_marker = 1;"
	escaped := lexer.EscapeIdentifiers(in)
	got := lexer.UnescapeIdentifiers(escaped)
	if got != in {
		t.Errorf("round trip mismatch: got %q, want %q", got, in)
	}
}

func TestEscapeHexHelper(t *testing.T) {
	if got := lexer.EscapeHex('$'); got != "__x0024" {
		t.Errorf("EscapeHex('$') = %q, want __x0024", got)
	}
}
