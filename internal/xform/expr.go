// Package xform implements pipeline stages 6-8 (spec §4.5, §4.6):
// recursive expression lowering, statement/control-flow construction,
// and the class/interface body assembler that ties declaration headers
// and atom bodies into the ast package's node tree.
package xform

import (
	"regexp"
	"strings"
)

// renameMethods is the fixed method-rewrite set from spec §4.5:
// `subj.m(args)` -> `__m(subj, args)`, applied iteratively.
var renameMethods = []string{
	"replace", "replaceAll", "replaceFirst", "contains", "equals",
	"equalsIgnoreCase", "hashCode", "toCharArray", "printStackTrace",
	"split", "startsWith", "endsWith", "codePointAt", "matches",
}

var methodCallRE = buildMethodCallRE()

func buildMethodCallRE() *regexp.Regexp {
	return regexp.MustCompile(`(\w[\w.]*)\.(` + strings.Join(renameMethods, "|") + `)\(`)
}

var (
	arrayCreateBraceRE = regexp.MustCompile(`\bnew\s+[\w.]+(?:\s*\[\s*\])+\s*(\{)`)
	arrayDimsRE        = regexp.MustCompile(`\bnew\s+([\w.]+)((?:\s*\[[^\[\]]+\])+)`)
	dimContentRE       = regexp.MustCompile(`\[([^\[\]]+)\]`)
	arrayLengthCallRE  = regexp.MustCompile(`(\w[\w.]*)\.length\(\)`)
	colorLiteralRE     = regexp.MustCompile(`#([0-9A-Fa-f]{6})\b`)
	superCallRE        = regexp.MustCompile(`\bsuper\s*(\()`)
	superDotRE         = regexp.MustCompile(`\bsuper\s*\.`)
	thisCallRE         = regexp.MustCompile(`\bthis\s*(\()`)
	intFSuffixRE       = regexp.MustCompile(`\b0+(\d+)f\b`)
	leadingZeroFracRE  = regexp.MustCompile(`\b0+(\.\d+)f?\b`)
	floatSuffixRE      = regexp.MustCompile(`(\d)\.(\d+)f\b`)
	percentRE          = regexp.MustCompile(`\s*%\s*`)
	instanceofRE       = regexp.MustCompile(`([\w.()\]]+)\s+instanceof\s+([\w.]+)`)
	boolParseRE        = regexp.MustCompile(`\bboolean\s*\(`)
	bareRenameRE       = regexp.MustCompile(`\b(frameRate|keyPressed|mousePressed)\b(\s*[^(])`)
)

var parseCalls = map[string]string{
	"byte":  "parseByte",
	"char":  "parseChar",
	"float": "parseFloat",
	"int":   "parseInt",
}

// TransformExpression applies the sequenced rewrites of spec §4.5 to one
// expanded expression fragment. Array/cast handling that needs to find a
// matching top-level delimiter works directly on the string rather than
// via regex backreferences, since Go's RE2 engine has neither
// backreferences nor lookaround.
func TransformExpression(s string) string {
	s = arrayCreateBraceRE.ReplaceAllString(s, "$1")
	s = fixedPoint(s, rewriteArrayDims)

	s = arrayLengthCallRE.ReplaceAllString(s, "$1.length")
	s = colorLiteralRE.ReplaceAllString(s, "0xFF$1")
	s = superCallRE.ReplaceAllString(s, "$$superCstr$1")
	s = superDotRE.ReplaceAllString(s, "$$super.")
	s = thisCallRE.ReplaceAllString(s, "$$constr$1")

	s = stripLeadingZeros(s)
	s = floatSuffixRE.ReplaceAllString(s, "$1.$2")
	s = percentRE.ReplaceAllString(s, " % ")

	s = bareRenameRE.ReplaceAllString(s, "__$1$2")

	s = boolParseRE.ReplaceAllString(s, "parseBoolean(")
	for name, repl := range parseCalls {
		re := regexp.MustCompile(`\b` + name + `\s*\(`)
		s = re.ReplaceAllString(s, repl+"(")
	}

	s = transformPixelsProxy(s)
	s = fixedPoint(s, renameChainedMethods)
	s = fixedPoint(s, rewriteInstanceof)
	s = deleteCasts(s)

	return s
}

func fixedPoint(s string, step func(string) (string, bool)) string {
	for {
		next, changed := step(s)
		if !changed {
			return next
		}
		s = next
	}
}

func renameChainedMethods(s string) (string, bool) {
	loc := methodCallRE.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, false
	}
	subj := s[loc[2]:loc[3]]
	method := s[loc[4]:loc[5]]
	callOpen := loc[1]

	argEnd := matchingParen(s, callOpen-1)
	if argEnd < 0 {
		return s, false
	}
	args := s[callOpen:argEnd]
	replacement := "__" + method + "(" + subj + argsPrefix(args) + ")"
	return s[:loc[0]] + replacement + s[argEnd+1:], true
}

func argsPrefix(args string) string {
	args = strings.TrimSpace(args)
	if args == "" {
		return ""
	}
	return "," + args
}

// rewriteArrayDims lowers `new T[e][f]...` (spec §4.5: "-> $p.createJavaArray('T', [e,f,…])").
// Only fires once dim expressions are non-empty text (the empty-dims
// brace-initializer form is handled separately by arrayCreateBraceRE).
func rewriteArrayDims(s string) (string, bool) {
	loc := arrayDimsRE.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, false
	}
	typeName := s[loc[2]:loc[3]]
	dimsText := s[loc[4]:loc[5]]

	var dims []string
	for _, m := range dimContentRE.FindAllStringSubmatch(dimsText, -1) {
		dims = append(dims, strings.TrimSpace(m[1]))
	}
	replacement := TransformArrayCreateDims(typeName, dims)
	return s[:loc[0]] + replacement + s[loc[1]:], true
}

func rewriteInstanceof(s string) (string, bool) {
	loc := instanceofRE.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, false
	}
	lhs := s[loc[2]:loc[3]]
	rhs := s[loc[4]:loc[5]]
	return s[:loc[0]] + "__instanceof(" + lhs + ", " + rhs + ")" + s[loc[1]:], true
}

// stripLeadingZeros implements spec §4.5's leading-zero rule, which
// only fires for float-suffixed or decimal-point literals (`0010f` ->
// `10`, `000.43` -> `0.43`); a plain leading-zero integer like `0010`
// has no marker distinguishing it from octal notation and is left
// unchanged.
func stripLeadingZeros(s string) string {
	s = leadingZeroFracRE.ReplaceAllString(s, "0$1")
	return intFSuffixRE.ReplaceAllString(s, "$1")
}

// transformPixelsProxy rewrites the fixed pixels-array-proxy surface
// from spec §4.5. Assignment forms are checked before plain reads since
// `pixels[i] = v` also matches the `pixels[i]` read pattern as a prefix.
func transformPixelsProxy(s string) string {
	assignIndexRE := regexp.MustCompile(`\bpixels\s*\[([^\]]+)\]\s*=\s*([^;,)]+)`)
	s = assignIndexRE.ReplaceAllString(s, "pixels.setPixel($1, $2)")

	readIndexRE := regexp.MustCompile(`\bpixels\s*\[([^\]]+)\]`)
	s = readIndexRE.ReplaceAllString(s, "pixels.getPixel($1)")

	lengthRE := regexp.MustCompile(`\bpixels\.length\b`)
	s = lengthRE.ReplaceAllString(s, "pixels.getLength()")

	assignRE := regexp.MustCompile(`\bpixels\s*=\s*([^;,)]+)`)
	s = assignRE.ReplaceAllString(s, "pixels.set($1)")

	bareRE := regexp.MustCompile(`\bpixels\b(\.\w+)?`)
	s = bareRE.ReplaceAllStringFunc(s, func(m string) string {
		switch strings.TrimPrefix(m, "pixels") {
		case ".setPixel", ".getPixel", ".getLength", ".set", ".toArray":
			return m
		}
		return "pixels.toArray()" + strings.TrimPrefix(m, "pixels")
	})

	return s
}

// matchingParen returns the index of the `)` matching the `(` at open,
// or -1 if unbalanced.
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// castBoundaryRE finds a candidate `(Type)` prefix ahead of a primary
// expression: spec §4.5's parenthesized type-cast deletion.
var castBoundaryRE = regexp.MustCompile(`\(\s*([\w.]+)(\s*\[\s*\])?\s*\)\s*`)
var castArgStopRE = regexp.MustCompile(`[,\]}?:*+\-/^|%&~<>=]`)
var castPrecedeRE = regexp.MustCompile(`[\w)\]]$`)
var castFollowRE = regexp.MustCompile(`^[\w('"]`)

// deleteCasts implements spec §4.5's cast-deletion rule and its §9 open
// question: `(T)` with no array dims, or a single empty `[]`, in front
// of a primary expression is dropped; `(int)` instead becomes
// __int_cast(arg) where arg runs up to the next top-level separator
// listed in castArgStopRE; `(T[])` with any non-empty dimension is left
// alone (not recognized as a cast).
func deleteCasts(s string) string {
	start := 0
	for {
		loc := castBoundaryRE.FindStringSubmatchIndex(s[start:])
		if loc == nil {
			return s
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += start
			}
		}
		// castBoundaryRE's optional dims group only ever matches a
		// single *empty* `[]`; a nonempty dimension (`[3]`, `[i][j]`,
		// multiple `[]`s) never satisfies the pattern at all, which is
		// how spec §9's "(T[]) with nonempty dim falls through to
		// not-a-cast" falls out naturally rather than needing a
		// separate branch here.
		typeName := s[loc[2]:loc[3]]
		after := loc[1]

		// A group preceded by a name, `)` or `]` is a call or index
		// argument, and one not followed by a primary expression is a
		// parenthesized operand: neither is a cast.
		if castPrecedeRE.MatchString(s[:loc[0]]) || !castFollowRE.MatchString(s[after:]) {
			start = loc[0] + 1
			continue
		}

		if typeName == "int" && loc[4] < 0 {
			argEnd := findCastArgEnd(s, after)
			arg := s[after:argEnd]
			s = s[:loc[0]] + "__int_cast(" + arg + ")" + s[argEnd:]
			continue
		}

		s = s[:loc[0]] + s[after:]
	}
}

func findCastArgEnd(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return i
			}
			depth--
		default:
			if depth == 0 && castArgStopRE.MatchString(string(s[i])) {
				return i
			}
		}
	}
	return len(s)
}
