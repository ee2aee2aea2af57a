package rules

import (
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// declarativeKinds are the top-level simple statements that do not run
// script code when the module is imported.
var declarativeKinds = map[string]struct{}{
	"import_statement":        {},
	"import_from_statement":   {},
	"future_import_statement": {},
	"pass_statement":          {},
	"global_statement":        {},
	"nonlocal_statement":      {},
	"type_alias_statement":    {},
}

// IsMainGuard reports whether cond is the comparison __name__ == "__main__",
// with the operands in either order. Membership tests and chained
// comparisons are not recognized.
func IsMainGuard(cond m.Expr) bool {
	if cond.Kind != m.ExprCompare || len(cond.Ops) != 1 || cond.Ops[0] != "==" || len(cond.Operands) != 2 {
		return false
	}

	isName := func(e m.Expr) bool { return e.Kind == m.ExprName && e.Value == "__name__" }
	isMain := func(e m.Expr) bool { return e.Kind == m.ExprString && e.Value == "__main__" }

	left, right := cond.Operands[0], cond.Operands[1]

	return isName(left) && isMain(right) || isMain(left) && isName(right)
}

// IsScriptStatement reports whether a top-level statement executes code on
// import, as opposed to declaring names.
func IsScriptStatement(stmt m.Stmt) bool {
	switch s := stmt.(type) {
	case *m.FunctionDef, *m.ClassDef, *m.Assign:
		return false
	case *m.ExprStmt:
		return s.Value.Kind != m.ExprString && s.Value.Kind != m.ExprEllipsis
	case *m.Simple:
		_, declarative := declarativeKinds[s.Kind]
		return !declarative
	default:
		return true
	}
}

// CheckMainBlock requires a top-level entry-point guard in modules that run
// script code. Modules made only of imports, definitions, assignments and
// docstrings are exempt: they produce no finding even without a guard.
func CheckMainBlock(_ *m.SourceView, tree *m.SyntaxView) []m.Finding {
	script := false

	for _, stmt := range tree.Module.Body {
		if guard, ok := stmt.(*m.If); ok && IsMainGuard(guard.Condition) {
			return nil
		}

		if IsScriptStatement(stmt) {
			script = true
		}
	}

	if !script {
		return nil
	}

	return []m.Finding{violation(m.RuleMainBlock, 0, "Missing 'if __name__ == \"__main__\":' block in the script.")}
}
