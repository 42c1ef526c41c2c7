package ast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bramblecore/pjstranspile/internal/render"
	"github.com/bramblecore/pjstranspile/internal/session"
)

// ClassOrInterface is the Class/Interface node from spec §3: a variable
// declaration bound to its body's IIFE, republished onto $p, followed by
// the class-metadata line spec §4.6 step 10 requires.
type ClassOrInterface struct {
	Name  string
	Body  Node // *ClassBody or *InterfaceBody
	Class *session.ClassInfo
}

func (c *ClassOrInterface) Emit(ctx *render.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "var %s = %s;\n$p.%s = %s;\n", c.Name, c.Body.Emit(ctx), c.Name, c.Name)
	b.WriteString(c.emitMetadata())
	return b.String()
}

// emitMetadata appends $base/$interfaces/$methods/$isInterface (spec §3,
// §4.6 step 10) and wires the host runtime's inheritance chain via
// $p.extendStaticMembers/$p.extendInterfaceMembers (spec §6).
func (c *ClassOrInterface) emitMetadata() string {
	info := c.Class
	var b strings.Builder

	base := "null"
	if info.BaseName != "" {
		base = info.BaseName
	}
	fmt.Fprintf(&b, "%s.$base = %s;\n", c.Name, base)

	ifaces := info.InterfaceNames
	fmt.Fprintf(&b, "%s.$interfaces = [%s];\n", c.Name, strings.Join(ifaces, ", "))

	methodNames := make([]string, 0, len(info.Methods))
	for name := range info.Methods {
		methodNames = append(methodNames, name)
	}
	sort.Strings(methodNames)
	quoted := make([]string, len(methodNames))
	for i, name := range methodNames {
		quoted[i] = strconv.Quote(name)
	}
	fmt.Fprintf(&b, "%s.$methods = [%s];\n", c.Name, strings.Join(quoted, ", "))

	fmt.Fprintf(&b, "%s.$isInterface = %t;\n", c.Name, info.IsInterface)

	if info.BaseName != "" {
		fmt.Fprintf(&b, "$p.extendStaticMembers(%s, %s);\n", c.Name, base)
	}
	for _, iface := range ifaces {
		fmt.Fprintf(&b, "$p.extendInterfaceMembers(%s, %s);\n", c.Name, iface)
	}

	return b.String()
}

// ClassBody is the full class assembler output (spec §4.6): an IIFE
// returning a constructor function.
type ClassBody struct {
	Class          *session.ClassInfo
	InnerClasses   []Node // *InnerClass; Emit writes them in descending weight order
	Fields         []*ClassField
	Methods        []*ClassMethod
	Constructors   []*Constructor
	Functions      []Node // verbatim inner functions
	TrailingMisc   []string
}

func (cb *ClassBody) Emit(ctx *render.Context) string {
	ctx.SelfDepth++
	depth := ctx.SelfDepth
	selfID := "$this_" + itoa(depth)
	ctx.Push(render.NewClassScope(cb.Class))
	defer func() {
		ctx.Pop()
		ctx.SelfDepth--
	}()

	var b strings.Builder
	fmt.Fprintf(&b, "(function() {\nreturn function %s() {\n", cb.Class.Name)
	fmt.Fprintf(&b, "var %s = this;\n", selfID)

	if cb.Class.BaseName != "" {
		fmt.Fprintf(&b, "var $super = { $upcast: %s };\n", selfID)
		fmt.Fprintf(&b, "function $superCstr() { %s.apply($super, arguments); if (!('$self' in $super)) $p.extendClassChain($super); }\n",
			cb.Class.BaseName)
	} else {
		fmt.Fprintf(&b, "function $superCstr() { $p.extendClassChain(%s); }\n", selfID)
	}

	for _, fn := range cb.Functions {
		b.WriteString(fn.Emit(ctx))
		b.WriteString("\n")
	}

	innerWeight := func(n Node) int {
		if ic, ok := n.(*InnerClass); ok {
			if c, ok := ic.Body.(*ClassOrInterface); ok && c.Class != nil {
				return c.Class.Weight
			}
		}
		return 0
	}
	inners := append([]Node(nil), cb.InnerClasses...)
	sort.SliceStable(inners, func(i, j int) bool { return innerWeight(inners[i]) > innerWeight(inners[j]) })
	for _, inner := range inners {
		b.WriteString(inner.Emit(ctx))
		b.WriteString("\n")
		if ic, ok := inner.(*InnerClass); ok {
			if ic.IsStatic {
				fmt.Fprintf(&b, "%s.%s = %s;\n", cb.Class.Name, ic.Name, ic.Name)
			}
			fmt.Fprintf(&b, "%s.%s = %s;\n", selfID, ic.Name, ic.Name)
		}
	}

	for _, f := range cb.Fields {
		b.WriteString(f.emit(ctx, cb.Class.Name, selfID))
		b.WriteString("\n")
	}

	for _, m := range cb.Methods {
		b.WriteString(m.emit(ctx, cb.Class.Name, selfID))
		b.WriteString("\n")
	}

	for _, misc := range cb.TrailingMisc {
		b.WriteString(misc)
		b.WriteString("\n")
	}

	emitConstructorDispatch(&b, cb.Constructors, selfID)
	for _, c := range cb.Constructors {
		b.WriteString(c.emit(ctx, selfID))
		b.WriteString("\n")
	}

	b.WriteString("$constr.apply(null, arguments);\n")
	b.WriteString("};\n})()")
	return b.String()
}

// emitConstructorDispatch writes the $constr arity dispatcher (spec §3
// "Constructor arity dispatch" invariant, §4.6 step 8).
func emitConstructorDispatch(b *strings.Builder, cstrs []*Constructor, selfID string) {
	b.WriteString("function $constr() {\n")
	for _, c := range cstrs {
		op := "==="
		if c.HasVarargs {
			op = ">="
		}
		fmt.Fprintf(b, "if (arguments.length %s %d) { $constr_%d.apply(%s, arguments); return; }\n",
			op, c.Arity, c.Arity, selfID)
	}
	b.WriteString("$superCstr();\n}\n")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// InterfaceBody is the InterfaceBody node (spec §3): an IIFE producing a
// stub constructor that throws, plus metadata.
type InterfaceBody struct {
	Class        *session.ClassInfo
	InnerClasses []Node
}

func (ib *InterfaceBody) Emit(ctx *render.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(function() {\nreturn function %s() { throw new Error('cannot instantiate interface %s'); };\n",
		ib.Class.Name, ib.Class.Name)
	for _, inner := range ib.InnerClasses {
		b.WriteString(inner.Emit(ctx))
		b.WriteString("\n")
	}
	b.WriteString("})()")
	return b.String()
}

// InnerClass / InnerInterface delegates to its body's stringify contract
// (spec §3); isStatic governs whether the class-body assembler assigns
// it onto both the outer class and $this_K or only $this_K.
type InnerClass struct {
	Name     string
	Body     Node
	IsStatic bool
}

func (i *InnerClass) Emit(ctx *render.Context) string {
	return i.Body.Emit(ctx)
}
