package rules

import (
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// CheckModuleDocstring requires the first top-level statement to be a string
// literal. String literals further down or inside functions do not count.
func CheckModuleDocstring(_ *m.SourceView, tree *m.SyntaxView) []m.Finding {
	body := tree.Module.Body
	if len(body) > 0 && isStringExpr(body[0]) {
		return nil
	}

	return []m.Finding{violation(m.RuleModuleDocstring, 0, "The module is missing a docstring.")}
}

// CheckFunctionDocstring requires every function, nested ones and methods
// included, to open its body with a string literal.
func CheckFunctionDocstring(_ *m.SourceView, tree *m.SyntaxView) []m.Finding {
	var findings []m.Finding

	for _, fn := range tree.Functions() {
		if len(fn.Body) > 0 && isStringExpr(fn.Body[0]) {
			continue
		}

		findings = append(findings, violation(m.RuleFunctionDocstring, fn.Line,
			"Function '%s' is missing a docstring.", fn.Name))
	}

	return byLine(findings)
}
