package rules

import (
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

const defaultSeparator = " = "

// DefaultApplies reports whether a parameter default is subject to the
// whitespace-around-assignment check: only unannotated parameters whose
// default is a literal other than None.
func DefaultApplies(p m.Parameter) bool {
	switch {
	case p.Default == nil:
		return false
	case p.HasAnnotation:
		return false
	case p.Default.Kind == m.ExprNone:
		return false
	default:
		return p.Default.IsLiteral()
	}
}

// CheckWhitespaceAroundAssignment requires exactly one space on each side of
// the "=" separating a parameter from its default value.
func CheckWhitespaceAroundAssignment(src *m.SourceView, tree *m.SyntaxView) []m.Finding {
	var findings []m.Finding

	for _, fn := range tree.Functions() {
		for _, p := range fn.Params {
			if !DefaultApplies(p) {
				continue
			}

			if separator(src, p) == defaultSeparator {
				continue
			}

			findings = append(findings, violation(m.RuleWhitespaceAssignment, p.NameEnd.Line,
				"Expected single spaces around '=' symbol for default value of parameter '%s' on line %d.",
				p.Name, p.NameEnd.Line))
		}
	}

	return byLine(findings)
}

// separator returns the text between the parameter name and its default, or
// "" when they are not on the same line.
func separator(src *m.SourceView, p m.Parameter) string {
	if p.NameEnd.Line != p.DefaultStart.Line {
		return ""
	}

	line, ok := src.Line(p.NameEnd.Line)
	if !ok {
		return ""
	}

	from, to := p.NameEnd.Column, p.DefaultStart.Column
	if from < 0 || to > len(line) || from > to {
		return ""
	}

	return line[from:to]
}
