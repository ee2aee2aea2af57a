// Package rules implements the individual style rules. Every rule is a pure
// function over the immutable source and syntax views and returns only
// violations.
package rules

import (
	"cmp"
	"fmt"
	"slices"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// TextRule inspects only the line-oriented view of a file.
type TextRule func(src *m.SourceView) []m.Finding

// TreeRule inspects the syntax view, optionally consulting the source lines.
type TreeRule func(src *m.SourceView, tree *m.SyntaxView) []m.Finding

func violation(rule m.RuleID, line int, format string, args ...any) m.Finding {
	return m.Finding{
		Rule:     rule,
		Severity: m.SeverityWarning,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
}

// byLine orders findings by source line, keeping discovery order for ties.
func byLine(findings []m.Finding) []m.Finding {
	slices.SortStableFunc(findings, func(a, b m.Finding) int {
		return cmp.Compare(a.Line, b.Line)
	})

	return findings
}

// functionBody walks the statements that belong to fn itself: nested blocks
// are entered, nested function and class definitions are not.
func functionBody(fn *m.FunctionDef, visit func(m.Stmt)) {
	m.Inspect(fn.Body, func(s m.Stmt) bool {
		visit(s)

		switch s.(type) {
		case *m.FunctionDef, *m.ClassDef:
			return false
		default:
			return true
		}
	})
}

func isStringExpr(stmt m.Stmt) bool {
	expr, ok := stmt.(*m.ExprStmt)
	return ok && expr.Value.Kind == m.ExprString
}
