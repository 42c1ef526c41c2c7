package render

// Identifier resolves name against ctx and returns the text that should
// replace it in the rendered output (spec §4.6). Call this from every
// Emit that encounters a free identifier — variable references, method
// call targets, the bare name half of a field access whose receiver was
// elided in source.
func (c *Context) Identifier(name string) string {
	l := c.Resolve(name)
	switch l.Resolution {
	case ThisField:
		return c.SelfID() + "." + name
	case ThisMethod:
		return c.SelfID() + ".$self." + name
	case StaticMember:
		return l.ClassName + "." + name
	case HostRuntime:
		return "$p." + name
	default: // Local, Unresolved
		return name
	}
}
