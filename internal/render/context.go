// Package render implements pipeline stage 10 (spec §4.6): the
// name-resolution context stack that rewrites every free identifier
// encountered while emitting target code into one of local, this-field,
// this-method, static class member, host-runtime member, or left
// untouched.
package render

import "github.com/bramblecore/pjstranspile/internal/session"

// Resolution is what a Scope decides a free identifier means.
type Resolution int

const (
	// Unresolved means this scope has no opinion; the search continues
	// to the scope below it on the stack.
	Unresolved Resolution = iota
	Local                 // identifier names itself (local var, param, catch var)
	ThisField
	ThisMethod
	StaticMember
	HostRuntime
)

// Lookup is the result of resolving one free identifier.
type Lookup struct {
	Resolution Resolution
	// ClassName is set for StaticMember (the owning class's name).
	ClassName string
}

// Scope is one frame of the name-resolution context stack (spec §4.6):
// function params > catch params > block locals > class members >
// globals, each shadowing the ones below it.
type Scope interface {
	Resolve(name string) (Lookup, bool)
}

// Context is the mutable stack of scopes threaded through rendering. The
// renderer pushes a frame when entering a function body, catch clause,
// statement block, or class body, and pops it on the way out.
type Context struct {
	SelfDepth int // current scope depth, for $this_K (spec glossary: "Scope depth")
	frames    []Scope
}

// NewContext returns a Context whose base frame resolves identifiers
// against the host-runtime global name set.
func NewContext(opts session.Options) *Context {
	return &Context{frames: []Scope{GlobalScope{names: opts.GlobalNames()}}}
}

// Push adds a new frame on top of the stack (highest-priority scope).
func (c *Context) Push(s Scope) {
	c.frames = append(c.frames, s)
}

// Pop removes the topmost frame.
func (c *Context) Pop() {
	c.frames = c.frames[:len(c.frames)-1]
}

// Resolve walks the stack from the top down, returning the first frame's
// opinion on name. If no frame resolves it, the identifier is left
// untouched (the spec's "otherwise -> unchanged" fallback).
func (c *Context) Resolve(name string) Lookup {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if l, ok := c.frames[i].Resolve(name); ok {
			return l
		}
	}
	return Lookup{Resolution: Unresolved}
}

// SelfID is $this_K for the current scope depth (spec §4.6/glossary).
func (c *Context) SelfID() string {
	return selfID(c.SelfDepth)
}

func selfID(depth int) string {
	return "$this_" + itoa(depth)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
