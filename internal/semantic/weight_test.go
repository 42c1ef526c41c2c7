package semantic_test

import (
	"testing"

	"github.com/bramblecore/pjstranspile/internal/semantic"
	"github.com/bramblecore/pjstranspile/internal/session"
)

func TestWeightMonotonicAcrossChain(t *testing.T) {
	reg := session.NewClassRegistry()

	c := session.NewClassInfo(reg.NewClassID(), "C", -1, false)
	c.BaseName = "B"
	reg.Register(c)

	b := session.NewClassInfo(reg.NewClassID(), "B", -1, false)
	b.BaseName = "A"
	reg.Register(b)

	a := session.NewClassInfo(reg.NewClassID(), "A", -1, false)
	reg.Register(a)

	semantic.ResolveLinks(reg)
	semantic.Weight(reg)

	if !(c.Weight < b.Weight && b.Weight < a.Weight) {
		t.Fatalf("expected C < B < A weights (bases outweigh derived), got A=%d B=%d C=%d", a.Weight, b.Weight, c.Weight)
	}
}

func TestSortDescendingWeightStable(t *testing.T) {
	a := &session.ClassInfo{Name: "A", Weight: 2}
	b := &session.ClassInfo{Name: "B", Weight: 2}
	c := &session.ClassInfo{Name: "C", Weight: 0}

	sorted := semantic.Sort([]*session.ClassInfo{c, a, b})
	if sorted[0] != a || sorted[1] != b || sorted[2] != c {
		t.Fatalf("unexpected order: %v %v %v", sorted[0].Name, sorted[1].Name, sorted[2].Name)
	}
}

func TestResolveLinksSkipsUnknownBase(t *testing.T) {
	reg := session.NewClassRegistry()
	c := session.NewClassInfo(reg.NewClassID(), "Orphan", -1, false)
	c.BaseName = "Nowhere"
	reg.Register(c)

	semantic.ResolveLinks(reg)
	if c.Base != nil {
		t.Fatalf("expected unresolved base to stay nil, got %+v", c.Base)
	}
}
