package render

import "github.com/bramblecore/pjstranspile/internal/session"

// GlobalScope is the base frame: every name in Options.GlobalNames()
// resolves to the host library proxy ($p.name), per spec §4.6's final
// fallback before "left unchanged".
type GlobalScope struct {
	names map[string]bool
}

func NewGlobalScope(names map[string]bool) GlobalScope {
	return GlobalScope{names: names}
}

func (g GlobalScope) Resolve(name string) (Lookup, bool) {
	if g.names[name] {
		return Lookup{Resolution: HostRuntime}, true
	}
	return Lookup{}, false
}

// LocalScope covers function params, catch params, and block-local
// variable declarations: any of spec §4.6's "local -> unchanged" frames.
// It's reused for all three since they differ only in when they're
// pushed/popped, not in resolution behavior.
type LocalScope struct {
	names map[string]bool
}

func NewLocalScope(names ...string) *LocalScope {
	s := &LocalScope{names: make(map[string]bool, len(names))}
	for _, n := range names {
		s.names[n] = true
	}
	return s
}

func (l *LocalScope) Declare(name string) {
	l.names[name] = true
}

func (l *LocalScope) Resolve(name string) (Lookup, bool) {
	if l.names[name] {
		return Lookup{Resolution: Local}, true
	}
	return Lookup{}, false
}

// ClassScope resolves identifiers against one class's own fields, inner
// classes, and methods (spec §4.6): a field becomes $this_K.name (or
// ClassName.name when static), a method becomes $this_K.$self.name (or
// ClassName.name when static), everything else defers to the scope
// below. For an inner class that is the enclosing class's ClassScope;
// no ClassScope is pushed for a base class, so inherited members are
// not resolved here.
type ClassScope struct {
	class *session.ClassInfo
}

func NewClassScope(class *session.ClassInfo) ClassScope {
	return ClassScope{class: class}
}

func (c ClassScope) Resolve(name string) (Lookup, bool) {
	if _, ok := c.class.InnerClasses[name]; ok {
		return Lookup{Resolution: ThisField, ClassName: c.class.Name}, true
	}
	if isStatic, ok := c.class.Fields[name]; ok {
		if isStatic {
			return Lookup{Resolution: StaticMember, ClassName: c.class.Name}, true
		}
		return Lookup{Resolution: ThisField, ClassName: c.class.Name}, true
	}
	if isStatic, ok := c.class.Methods[name]; ok {
		if isStatic {
			return Lookup{Resolution: StaticMember, ClassName: c.class.Name}, true
		}
		return Lookup{Resolution: ThisMethod, ClassName: c.class.Name}, true
	}
	return Lookup{}, false
}

// StaticScope wraps a ClassScope's lookups for a static method body,
// where class members named directly resolve to ClassName.name rather
// than the instance-relative $this_K form the spec also defines for
// instance methods.
type StaticScope struct {
	inner ClassScope
}

func NewStaticScope(class *session.ClassInfo) StaticScope {
	return StaticScope{inner: NewClassScope(class)}
}

func (s StaticScope) Resolve(name string) (Lookup, bool) {
	l, ok := s.inner.Resolve(name)
	if !ok {
		return l, false
	}
	l.Resolution = StaticMember
	return l, true
}
