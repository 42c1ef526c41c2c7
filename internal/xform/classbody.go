package xform

import (
	"fmt"
	"strings"

	"github.com/bramblecore/pjstranspile/internal/ast"
	"github.com/bramblecore/pjstranspile/internal/atomize"
	"github.com/bramblecore/pjstranspile/internal/decl"
	"github.com/bramblecore/pjstranspile/internal/session"
)

// Builder assembles ast nodes out of declaration headers and atom
// bodies (pipeline stage 8, spec §4.6), registering every class and
// interface it encounters into the session's class registry as it
// goes.
type Builder struct {
	sess *session.Session
}

// NewBuilder returns a Builder writing into sess's atom table and class
// registry.
func NewBuilder(sess *session.Session) *Builder {
	return &Builder{sess: sess}
}

// BuildTopLevel extracts and builds every class/interface/function
// declaration plus free statements from a top-level atomized body
// (scopeID -1). It returns the ast.Root alongside the ClassInfo for
// each of its top-level classes, in the same order as root.Classes, so
// the caller can re-sort both together once semantic.Weight has run.
func (b *Builder) BuildTopLevel(body string) (*ast.Root, []*session.ClassInfo) {
	result := decl.Extract(body, "", &b.sess.Atoms)

	var classes []ast.Node
	var infos []*session.ClassInfo
	var statements []ast.Node

	for _, h := range result.Headers {
		switch h.Kind {
		case session.KindClass:
			node, info := b.buildClassOrInterface(h, -1)
			classes = append(classes, node)
			infos = append(infos, info)
		case session.KindFunction:
			statements = append(statements, b.buildGlobalFunction(h))
		}
	}

	statements = append(statements, BuildStatements(result.Remaining, &b.sess.Atoms)...)

	return &ast.Root{Classes: classes, Statements: statements}, infos
}

// SortTopLevelByWeight reorders root.Classes (and the parallel infos
// slice) by descending ClassInfo.Weight, stable on the original
// insertion order for ties (spec §4.7, §5).
func SortTopLevelByWeight(root *ast.Root, infos []*session.ClassInfo) {
	type pair struct {
		node ast.Node
		info *session.ClassInfo
	}
	pairs := make([]pair, len(root.Classes))
	for i := range root.Classes {
		pairs[i] = pair{root.Classes[i], infos[i]}
	}
	for i := 1; i < len(pairs); i++ {
		j := i
		for j > 0 && pairs[j-1].info.Weight < pairs[j].info.Weight {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			j--
		}
	}
	for i, p := range pairs {
		root.Classes[i] = p.node
		infos[i] = p.info
	}
}

func (b *Builder) buildGlobalFunction(h decl.Header) ast.Node {
	params := b.buildParams(h.ParamsAtom)
	body := b.buildBlockFromAtom(h.BodyAtom)
	return &ast.GlobalMethod{Name: h.Name, Params: params, Body: body}
}

// buildClassOrInterface registers h's class in the registry, recurses
// into its body for inner classes/methods/fields/constructors, and
// returns the ast.ClassOrInterface node wrapping the assembled body.
func (b *Builder) buildClassOrInterface(h decl.Header, scopeID int) (ast.Node, *session.ClassInfo) {
	id := b.sess.Classes.NewClassID()
	info := session.NewClassInfo(id, h.Name, scopeID, h.IsInterface)
	if len(h.Extends) > 0 {
		info.BaseName = h.Extends[0]
	}
	info.InterfaceNames = h.Implements
	b.sess.Classes.Register(info)

	bodyText := b.sess.Atoms.Get(h.BodyAtom).Text
	bodyText = strings.TrimSuffix(strings.TrimPrefix(bodyText, "{"), "}")
	inner := decl.Extract(bodyText, h.Name, &b.sess.Atoms)

	var innerClasses []ast.Node
	var methods []*ast.ClassMethod
	var constructors []*ast.Constructor
	var functions []ast.Node

	for _, ih := range inner.Headers {
		switch ih.Kind {
		case session.KindClass:
			node, innerInfo := b.buildClassOrInterface(ih, id)
			info.InnerClasses[ih.Name] = innerInfo.ID
			innerClasses = append(innerClasses, &ast.InnerClass{Name: ih.Name, Body: node, IsStatic: isStaticHeader(bodyText, ih)})
		case session.KindMethod:
			info.Methods[ih.Name] = isStaticHeader(bodyText, ih)
			methods = append(methods, b.buildMethod(ih))
		case session.KindFunction:
			functions = append(functions, b.buildGlobalFunction(ih))
		case session.KindConstructor:
			constructors = append(constructors, b.buildConstructor(ih))
		}
	}

	fieldGroups, misc := decl.ExtractFields(inner.Remaining)
	var fields []*ast.ClassField
	for _, fg := range fieldGroups {
		for _, d := range fg.Names {
			info.Fields[d.Name] = fg.IsStatic
		}
		fields = append(fields, convertFieldGroup(fg))
	}
	assignOverloadSuffixes(methods)
	assignConstructorArity(constructors)

	if h.IsInterface {
		ib := &ast.InterfaceBody{Class: info, InnerClasses: innerClasses}
		return &ast.ClassOrInterface{Name: h.Name, Body: ib, Class: info}, info
	}

	cb := &ast.ClassBody{
		Class:        info,
		InnerClasses: innerClasses,
		Fields:       fields,
		Methods:      methods,
		Constructors: constructors,
		Functions:    functions,
		TrailingMisc: misc,
	}
	return &ast.ClassOrInterface{Name: h.Name, Body: cb, Class: info}, info
}

func isStaticHeader(body string, h decl.Header) bool {
	placeholder := session.Placeholder(h.Kind, h.Index)
	idx := strings.Index(body, placeholder)
	if idx < 0 {
		return false
	}
	prefix := body[:idx]
	return strings.Contains(lastModifierRun(prefix), "static")
}

// lastModifierRun returns the trailing run of modifier keywords (and
// whitespace) immediately before a declaration placeholder, so
// isStaticHeader only looks at that declaration's own modifiers rather
// than matching "static" anywhere earlier in the body.
func lastModifierRun(prefix string) string {
	fields := strings.Fields(prefix)
	start := len(fields)
	for start > 0 && isModifierWord(fields[start-1]) {
		start--
	}
	return strings.Join(fields[start:], " ")
}

func isModifierWord(w string) bool {
	switch w {
	case "public", "private", "protected", "static", "final", "abstract", "override", "native":
		return true
	}
	return false
}

func (b *Builder) buildMethod(h decl.Header) *ast.ClassMethod {
	params := b.buildParams(h.ParamsAtom)
	body := b.buildBlockFromAtom(h.BodyAtom)
	return &ast.ClassMethod{
		Name:       h.Name,
		Params:     params,
		Body:       body,
		HasVarargs: params.VarargName != "",
	}
}

func (b *Builder) buildConstructor(h decl.Header) *ast.Constructor {
	params := b.buildParams(h.ParamsAtom)
	bodyText := b.sess.Atoms.Get(h.BodyAtom).Text
	bodyText = strings.TrimSuffix(strings.TrimPrefix(bodyText, "{"), "}")
	expanded := atomize.Expand(bodyText, &b.sess.Atoms, session.KindParen)
	c := &ast.Constructor{
		Params:     params,
		Body:       &ast.StatementsBlock{Statements: BuildStatements(bodyText, &b.sess.Atoms)},
		HasVarargs: params.VarargName != "",
		CallsSuper: superCallRE.MatchString(expanded),
		CallsThis:  thisCallRE.MatchString(expanded),
	}
	return c
}

func (b *Builder) buildBlockFromAtom(bodyAtom int) ast.Node {
	if bodyAtom < 0 {
		return &ast.StatementsBlock{}
	}
	bodyText := b.sess.Atoms.Get(bodyAtom).Text
	bodyText = strings.TrimSuffix(strings.TrimPrefix(bodyText, "{"), "}")
	return &ast.StatementsBlock{Statements: BuildStatements(bodyText, &b.sess.Atoms)}
}

func (b *Builder) buildParams(paramsAtom int) ast.Params {
	if paramsAtom < 0 {
		return ast.Params{}
	}
	text := b.sess.Atoms.Get(paramsAtom).Text
	text = strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")
	text = atomize.Expand(text, &b.sess.Atoms, session.KindBracket)
	if strings.TrimSpace(text) == "" {
		return ast.Params{}
	}

	var names []string
	var vararg string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		isVarargs := strings.Contains(part, "...")
		fields := strings.Fields(strings.ReplaceAll(part, "...", " "))
		if len(fields) == 0 {
			continue
		}
		name := fields[len(fields)-1]
		if isVarargs {
			vararg = name
		} else {
			names = append(names, name)
		}
	}
	return ast.Params{Names: names, VarargName: vararg}
}

func convertFieldGroup(fg decl.FieldGroup) *ast.ClassField {
	defs := make([]ast.VarDefinition, len(fg.Names))
	for i, d := range fg.Names {
		value := d.Value
		if value != "" {
			value = TransformExpression(value)
		}
		defs[i] = ast.VarDefinition{Name: d.Name, Value: value, DeclaredType: fg.Type}
	}
	return &ast.ClassField{Definitions: defs, DeclaredType: fg.Type, IsStatic: fg.IsStatic}
}

// assignOverloadSuffixes gives every group of same-named methods the
// `name$arity`, `name$arity_2`, ... methodId sequence required by spec
// §3's overload-uniqueness invariant.
func assignOverloadSuffixes(methods []*ast.ClassMethod) {
	seen := make(map[string]int)
	for _, m := range methods {
		key := fmt.Sprintf("%s$%d", m.Name, len(m.Params.Names))
		seen[key]++
		if seen[key] == 1 {
			m.MethodID = key
		} else {
			m.MethodID = fmt.Sprintf("%s_%d", key, seen[key])
		}
	}
}

// assignConstructorArity fills in each constructor's declared Arity
// from its own parameter count.
func assignConstructorArity(cstrs []*ast.Constructor) {
	for _, c := range cstrs {
		c.Arity = len(c.Params.Names)
	}
}
