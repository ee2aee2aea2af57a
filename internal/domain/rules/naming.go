package rules

import (
	"regexp"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

var (
	snakeCase  = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	pascalCase = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
)

// IsSnakeCase reports whether name is a valid function or variable name.
func IsSnakeCase(name string) bool {
	return snakeCase.MatchString(name)
}

// IsPascalCase reports whether name is a valid class name.
func IsPascalCase(name string) bool {
	return pascalCase.MatchString(name)
}

// CheckNamingStyle validates function, class and assignment target names
// anywhere in the module.
func CheckNamingStyle(_ *m.SourceView, tree *m.SyntaxView) []m.Finding {
	var findings []m.Finding

	m.Inspect(tree.Module.Body, func(s m.Stmt) bool {
		switch s := s.(type) {
		case *m.FunctionDef:
			if !IsSnakeCase(s.Name) {
				findings = append(findings, violation(m.RuleNamingStyle, s.Line,
					"Function name '%s' does not follow the style 'function_name'.", s.Name))
			}
		case *m.ClassDef:
			if !IsPascalCase(s.Name) {
				findings = append(findings, violation(m.RuleNamingStyle, s.Line,
					"Class name '%s' does not follow the camel case style.", s.Name))
			}
		case *m.Assign:
			for _, target := range s.Targets {
				if target.Kind == m.TargetName && !IsSnakeCase(target.Name) {
					findings = append(findings, violation(m.RuleNamingStyle, s.Line,
						"Variable name '%s' does not follow the style 'variable_name'.", target.Name))
				}
			}
		}

		return true
	})

	return byLine(findings)
}
