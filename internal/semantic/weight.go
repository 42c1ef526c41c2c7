// Package semantic implements pipeline stage 9 (spec §4.7): resolving
// each class's base and interface names through the scope chain, then
// computing a topological emission weight so that every class emits
// after everything it depends on.
package semantic

import "github.com/bramblecore/pjstranspile/internal/session"

// ResolveLinks walks every registered class and resolves BaseName and
// InterfaceNames to their *ClassInfo, recording the bidirectional
// base/derived and interfaces/derived links the weighter needs. An
// unresolved name (spec §7: "leaves base/interfaces[i] undefined") is
// silently skipped; the renderer still emits the textual name as-is.
func ResolveLinks(reg *session.ClassRegistry) {
	for _, c := range reg.All() {
		if c.BaseName != "" {
			if base, ok := reg.FindByName(c.BaseName, c.ScopeID); ok && base != c {
				c.Base = base
				base.Derived = append(base.Derived, c)
			}
		}
		for _, ifaceName := range c.InterfaceNames {
			if iface, ok := reg.FindByName(ifaceName, c.ScopeID); ok && iface != c {
				c.Interfaces = append(c.Interfaces, iface)
				iface.Derived = append(iface.Derived, c)
			}
		}
	}
}

// Weight runs the worklist algorithm from spec §4.7: any class with no
// inner classes and no derived classes starts at weight 0; each other
// class's pending dependency set is its inner classes plus its derived
// classes, and it's enqueued with weight = popped.weight + 1 once that
// set empties out. Undefined weights (a cycle, or a class never
// reached by the worklist) are left at zero, matching the spec's
// "undefined weights are treated as zero" fallback.
func Weight(reg *session.ClassRegistry) {
	all := reg.All()

	pending := make(map[int]map[int]bool, len(all))
	for _, c := range all {
		deps := make(map[int]bool)
		for _, innerID := range c.InnerClasses {
			deps[innerID] = true
		}
		for _, d := range c.Derived {
			deps[d.ID] = true
		}
		pending[c.ID] = deps
	}

	var queue []*session.ClassInfo
	seen := make(map[int]bool)
	for _, c := range all {
		if len(pending[c.ID]) == 0 {
			c.Weight = 0
			queue = append(queue, c)
			seen[c.ID] = true
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		dependents := candidateDependents(reg, cur)
		for _, dep := range dependents {
			set := pending[dep.ID]
			if set == nil || !set[cur.ID] {
				continue
			}
			delete(set, cur.ID)
			if len(set) == 0 && !seen[dep.ID] {
				dep.Weight = cur.Weight + 1
				seen[dep.ID] = true
				queue = append(queue, dep)
			}
		}
	}
}

// candidateDependents returns the classes whose pending dependency set
// may contain cur, once cur itself is done: cur's base, cur's
// interfaces, and cur's enclosing scope (spec §4.7: "for each of its
// scope-parent, base class, and interfaces, if that dependent's pending
// dependency set is reduced to empty by removing the popped class,
// enqueue the dependent").
func candidateDependents(reg *session.ClassRegistry, cur *session.ClassInfo) []*session.ClassInfo {
	var out []*session.ClassInfo
	if cur.Base != nil {
		out = append(out, cur.Base)
	}
	out = append(out, cur.Interfaces...)
	if cur.ScopeID >= 0 {
		if owner, ok := reg.Get(cur.ScopeID); ok {
			out = append(out, owner)
		}
	}
	return out
}

// Sort returns classes ordered by descending weight, stable on
// insertion order for ties (spec §5: "stable tie-breaking by insertion
// order").
func Sort(classes []*session.ClassInfo) []*session.ClassInfo {
	out := make([]*session.ClassInfo, len(classes))
	copy(out, classes)
	// insertion sort: stable, and the slice is never large enough that
	// this matters for performance relative to a generic sort.Slice.
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && out[j-1].Weight < out[j].Weight {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}
