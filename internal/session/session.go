package session

// Options is the resolver's external configuration (spec §6): the
// default-scope name set consulted when a free identifier isn't a local,
// field, method, or inner class, and the aFunctions map of custom
// host-global names, plus the library export registry contributed by
// plug-ins.
type Options struct {
	DefaultScope map[string]bool
	AFunctions   map[string]string
	Libraries    map[string]Library
}

// Library is one entry of the hostLib.lib registry: a plug-in name mapped
// to the set of names it exports into the global name set.
type Library struct {
	Exports []string
}

// GlobalNames returns the full set of identifiers the renderer treats as
// host-runtime members: DefaultScope, plus every aFunctions key, plus
// every export of every library.
func (o Options) GlobalNames() map[string]bool {
	names := make(map[string]bool, len(o.DefaultScope))
	for n := range o.DefaultScope {
		names[n] = true
	}
	for n := range o.AFunctions {
		names[n] = true
	}
	for _, lib := range o.Libraries {
		for _, n := range lib.Exports {
			names[n] = true
		}
	}
	return names
}

// Session is the spec's TransformSession (§9 design notes): the single
// mutable value threaded by pointer through every stage of one Transpile
// call. It is never a package global, so concurrent invocations are
// isolated by construction (spec §5).
type Session struct {
	Atoms   AtomTable
	Strings StringTable
	Classes *ClassRegistry
	Options Options
}

// New returns a Session ready for a single transpile invocation.
func New(opts Options) *Session {
	return &Session{
		Classes: NewClassRegistry(),
		Options: opts,
	}
}
