package rules

import (
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// CheckArgumentTypeHints reports every parameter without an annotation.
// self and cls are not exempt.
func CheckArgumentTypeHints(_ *m.SourceView, tree *m.SyntaxView) []m.Finding {
	var findings []m.Finding

	for _, fn := range tree.Functions() {
		for _, p := range fn.Params {
			if p.HasAnnotation {
				continue
			}

			findings = append(findings, violation(m.RuleArgumentTypeHints, p.Line,
				"Argument '%s' in function '%s' is missing type hint.", p.Name, fn.Name))
		}
	}

	return byLine(findings)
}

// CheckVariableTypeHints reports plain-name assignment targets in a function
// body that were not declared with an annotation beforehand. Annotated
// parameters count as declarations.
func CheckVariableTypeHints(_ *m.SourceView, tree *m.SyntaxView) []m.Finding {
	var findings []m.Finding

	for _, fn := range tree.Functions() {
		declared := make(map[string]struct{})

		for _, p := range fn.Params {
			if p.HasAnnotation {
				declared[p.Name] = struct{}{}
			}
		}

		functionBody(fn, func(s m.Stmt) {
			assign, ok := s.(*m.Assign)
			if !ok {
				return
			}

			for _, target := range assign.Targets {
				if target.Kind != m.TargetName {
					continue
				}

				if assign.Annotated {
					declared[target.Name] = struct{}{}
					continue
				}

				if _, ok := declared[target.Name]; ok {
					continue
				}

				findings = append(findings, violation(m.RuleVariableTypeHints, assign.Line,
					"Variable '%s' in function '%s' is missing type hint.", target.Name, fn.Name))
			}
		})
	}

	return byLine(findings)
}

// CheckReturnTypeHint requires every function to declare a return annotation.
func CheckReturnTypeHint(_ *m.SourceView, tree *m.SyntaxView) []m.Finding {
	var findings []m.Finding

	for _, fn := range tree.Functions() {
		if fn.HasReturnAnnotation {
			continue
		}

		findings = append(findings, violation(m.RuleReturnTypeHint, fn.Line,
			"Function '%s' is missing return type hint.", fn.Name))
	}

	return byLine(findings)
}
