package xform

import (
	"regexp"
	"strings"

	"github.com/bramblecore/pjstranspile/internal/ast"
	"github.com/bramblecore/pjstranspile/internal/atomize"
	"github.com/bramblecore/pjstranspile/internal/session"
)

// controlRE matches the statement-transformer's recognized
// control-flow leads (spec §2 stage 7).
var controlRE = regexp.MustCompile(`^\s*(if|for|while|do|switch|try|catch|finally|else|return|throw|break|continue|case|default)\b`)
var labelRE = regexp.MustCompile(`^\s*(\w+)\s*:\s*(for|while|do)\b`)
var headRE = regexp.MustCompile(`^("B\s*\d+")`)

// BuildStatements scans body (atomized, declarations already extracted)
// for top-level statements separated by `;` outside of atom
// placeholders, classifying each as a control-flow form or a plain
// expression statement (spec §4, stage 7).
func BuildStatements(body string, at *session.AtomTable) []ast.Node {
	var nodes []ast.Node
	for _, raw := range splitStatements(body) {
		stmt := strings.TrimSpace(raw)
		if stmt == "" {
			continue
		}
		nodes = append(nodes, buildOneStatement(stmt, at))
	}
	return nodes
}

func buildOneStatement(stmt string, at *session.AtomTable) ast.Node {
	if m := labelRE.FindStringSubmatchIndex(stmt); m != nil {
		name := stmt[m[2]:m[3]]
		loopStmt := stmt[m[4]:] // from the start of the for/while/do keyword
		return &ast.Label{Name: name, Body: buildOneStatement(loopStmt, at)}
	}

	if m := controlRE.FindStringSubmatch(stmt); m != nil {
		return buildControlStatement(m[1], stmt[len(m[0]):], at)
	}

	return &ast.Statement{Expr: BuildExpression(stmt, at)}
}

func buildControlStatement(keyword, rest string, at *session.AtomTable) ast.Node {
	rest = strings.TrimSpace(rest)

	switch keyword {
	case "else", "try", "finally", "default":
		return &ast.PrefixStatement{Prefix: keyword, Body: bodyNodeFromAtom(rest, at)}
	case "return", "throw", "break", "continue":
		if rest == "" {
			return &ast.Statement{Expr: &ast.Expression{Text: keyword}}
		}
		return &ast.Statement{Expr: &ast.Expression{Text: keyword + " " + TransformExpression(rest)}}
	case "catch":
		head := headRE.FindString(rest)
		name := catchParamName(head, at)
		body := strings.TrimSpace(rest[len(head):])
		return &ast.CatchStatement{ExceptionName: name, Body: bodyNodeFromAtom(body, at)}
	case "case":
		return &ast.PrefixStatement{Prefix: "case " + TransformExpression(rest) + ":", Body: nil}
	default: // if, for, while, do, switch
		head := headRE.FindString(rest)
		bodyText := strings.TrimSpace(rest[len(head):])
		headExpr := buildLoopHead(keyword, head, at)
		return &ast.PrefixStatement{Prefix: keyword, Arg: headExpr, Body: bodyNodeFromAtom(bodyText, at)}
	}
}

func catchParamName(head string, at *session.AtomTable) string {
	inner := atomize.Expand(head, at, session.KindParen)
	inner = strings.Trim(strings.TrimSpace(inner), "()")
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return "e"
	}
	return fields[len(fields)-1]
}

func buildLoopHead(keyword string, headToken string, at *session.AtomTable) ast.Node {
	if keyword != "for" {
		inner := atomize.Expand(headToken, at, session.KindParen)
		inner = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(inner), "("), ")")
		return &ast.Expression{Text: TransformExpression(inner)}
	}

	inner := atomize.Expand(headToken, at, session.KindParen)
	inner = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(inner), "("), ")")

	if containsTopLevel(inner, ';') {
		parts := splitTopLevelSemicolons(inner)
		var init, cond, step ast.Node
		if len(parts) > 0 && strings.TrimSpace(parts[0]) != "" {
			init = &ast.Expression{Text: TransformExpression(strings.TrimSpace(parts[0]))}
		}
		if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
			cond = &ast.Expression{Text: TransformExpression(strings.TrimSpace(parts[1]))}
		}
		if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
			step = &ast.Expression{Text: TransformExpression(strings.TrimSpace(parts[2]))}
		}
		return &ast.ForExpression{Init: init, Condition: cond, Step: step}
	}

	if idx := strings.Index(inner, " in "); idx >= 0 {
		varPart := strings.TrimSpace(inner[:idx])
		container := strings.TrimSpace(inner[idx+4:])
		fields := strings.Fields(varPart)
		name := fields[len(fields)-1]
		return &ast.ForInExpression{VarName: name, Container: &ast.Expression{Text: TransformExpression(container)}}
	}

	if idx := strings.Index(inner, ":"); idx >= 0 {
		varPart := strings.TrimSpace(inner[:idx])
		container := strings.TrimSpace(inner[idx+1:])
		fields := strings.Fields(varPart)
		name := fields[len(fields)-1]
		return &ast.ForEachExpression{IterName: "$it0", VarName: name, Container: &ast.Expression{Text: TransformExpression(container)}}
	}

	return &ast.Expression{Text: TransformExpression(inner)}
}

var braceAtomRE = regexp.MustCompile(`^"A\s*\d+"$`)

func bodyNodeFromAtom(text string, at *session.AtomTable) ast.Node {
	text = strings.TrimSpace(text)
	if text == "" {
		return &ast.StatementsBlock{}
	}
	if braceAtomRE.MatchString(text) {
		inner := atomize.Expand(text, at, session.KindBrace)
		inner = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(inner), "{"), "}")
		return &ast.StatementsBlock{Statements: BuildStatements(inner, at)}
	}
	return buildOneStatement(text, at)
}

func containsTopLevel(s string, sep byte) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				return true
			}
		}
	}
	return false
}

func splitTopLevelSemicolons(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ';':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

func splitStatements(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ';':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if strings.TrimSpace(s[start:]) != "" {
		out = append(out, s[start:])
	}
	return out
}

// BuildExpression turns a plain (non-control) statement fragment into
// an *ast.Expression, expanding any atom placeholders (brace/bracket
// literals) it contains into InlineObject/array text first.
func BuildExpression(text string, at *session.AtomTable) ast.Node {
	expanded := atomize.Expand(text, at, session.KindBrace, session.KindBracket, session.KindParen)
	return &ast.Expression{Text: TransformExpression(expanded)}
}
