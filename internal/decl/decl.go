// Package decl implements pipeline stage 5 (spec §4.4): matching
// class/interface, method, constructor, and function headers against an
// atomized token stream and replacing each with an indexed declaration
// atom (D method, E class/interface, G constructor, H function). The F
// inline-class and I inline-object kinds are not produced: anonymous
// class bodies and inline objects are not extracted. Field declarations are recovered from
// whatever body text is left once every header has been extracted.
package decl

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bramblecore/pjstranspile/internal/session"
)

const modifiers = `(?:(?:public|private|protected|static|final|abstract|override|native)\s+)*`
const dottedType = `[\w.]+(?:\s*"C\s*\d+")*`
const identList = `[\w.]+(?:\s*,\s*[\w.]+)*`

var classRE = regexp.MustCompile(
	modifiers + `(class|interface)\s+(\w+)` +
		`(?:\s+extends\s+(` + identList + `))?` +
		`(?:\s+implements\s+(` + identList + `))?` +
		`\s*("A\s*\d+")`)

var methodRE = regexp.MustCompile(
	modifiers + `(` + dottedType + `)\s+(\w+)\s*("B\s*\d+")` +
		`(?:\s*throws\s+` + identList + `)?` +
		`\s*("A\s*\d+"|;)`)

var functionRE = regexp.MustCompile(
	`\bfunction\b\s*(\w*)\s*("B\s*\d+")\s*("A\s*\d+")`)

// Header describes one extracted class/interface/method/constructor/
// function header.
type Header struct {
	Kind        session.AtomKind
	Index       int // index of the D/E/F/G/H atom recording this header
	Name        string
	ReturnType  string // methods only
	Extends     []string
	Implements  []string
	IsInterface bool // class headers only
	ParamsAtom  int  // index of the "B N" atom, or -1
	BodyAtom    int  // index of the "A N" atom, or -1 (abstract/interface method)
	HasBody     bool
}

// Result is everything the declaration extractor found in one body.
type Result struct {
	Remaining string // text left over after every header was pulled out, field declarations live here
	Headers   []Header
}

func atomIndex(token string) int {
	token = strings.Trim(token, `" `)
	parts := strings.Fields(token)
	n, _ := strconv.Atoi(parts[len(parts)-1])
	return n
}

// Extract runs the full stage-5 pass over an atomized body. className is
// the enclosing class's name (used to recognize constructors); pass "" at
// top level, where no constructor can appear.
func Extract(body string, className string, at *session.AtomTable) Result {
	var headers []Header

	body = extractAll(body, classRE, at, func(m []string) Header {
		kind := session.KindClass
		h := Header{Kind: kind, Name: m[2], ParamsAtom: -1, BodyAtom: atomIndex(m[5]), HasBody: true, IsInterface: m[1] == "interface"}
		if m[3] != "" {
			h.Extends = splitList(m[3])
		}
		if m[4] != "" {
			h.Implements = splitList(m[4])
		}
		return h
	}, &headers)

	// functionRE runs before methodRE: "function name(...){...}" would
	// otherwise also satisfy the method pattern (it has the same shape,
	// a type-looking token followed by a name-looking token followed by
	// params and a body) with "function" read as the return type. Pulling
	// function literals out first removes the ambiguity.
	body = extractAll(body, functionRE, at, func(m []string) Header {
		return Header{
			Kind:       session.KindFunction,
			Name:       m[1],
			ParamsAtom: atomIndex(m[2]),
			BodyAtom:   atomIndex(m[3]),
			HasBody:    true,
		}
	}, &headers)

	body = extractAll(body, methodRE, at, func(m []string) Header {
		h := Header{
			Kind:       session.KindMethod,
			ReturnType: m[1],
			Name:       m[2],
			ParamsAtom: atomIndex(m[3]),
			BodyAtom:   -1,
		}
		if m[4] != ";" {
			h.BodyAtom = atomIndex(m[4])
			h.HasBody = true
		}
		return h
	}, &headers)

	if className != "" {
		cstrRE := regexp.MustCompile(
			modifiers + regexp.QuoteMeta(className) + `\s*("B\s*\d+")` +
				`(?:\s*throws\s+` + identList + `)?` +
				`\s*("A\s*\d+")`)
		body = extractAll(body, cstrRE, at, func(m []string) Header {
			return Header{
				Kind:       session.KindConstructor,
				Name:       className,
				ParamsAtom: atomIndex(m[1]),
				BodyAtom:   atomIndex(m[2]),
				HasBody:    true,
			}
		}, &headers)
	}

	return Result{Remaining: body, Headers: headers}
}

// extractAll repeatedly applies re to body, replacing each leftmost match
// with the placeholder for a freshly recorded atom, until no match
// remains.
func extractAll(body string, re *regexp.Regexp, at *session.AtomTable, build func([]string) Header, headers *[]Header) string {
	for {
		loc := re.FindStringSubmatchIndex(body)
		if loc == nil {
			return body
		}
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] < 0 {
				continue
			}
			groups[i] = body[loc[2*i]:loc[2*i+1]]
		}
		h := build(groups)
		idx := at.Add(h.Kind, groups[0])
		h.Index = idx
		*headers = append(*headers, h)

		placeholder := session.Placeholder(h.Kind, idx)
		body = body[:loc[0]] + placeholder + body[loc[1]:]
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
