package domain

import (
	"pepcheck.dev/pkg/pepcheck/internal/domain/rules"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// RuleDef binds a rule identifier to its check function. Exactly one of
// CheckText and CheckTree is set, matching Input.
type RuleDef struct {
	ID          m.RuleID
	Input       m.InputKind
	Description string
	CheckText   rules.TextRule
	CheckTree   rules.TreeRule
}

// Info returns the descriptive part of the definition.
func (d RuleDef) Info() m.RuleInfo {
	return m.RuleInfo{ID: d.ID, Input: d.Input, Description: d.Description}
}

func textRule(id m.RuleID, description string, check rules.TextRule) RuleDef {
	return RuleDef{ID: id, Input: m.InputText, Description: description, CheckText: check}
}

func treeRule(id m.RuleID, description string, check rules.TreeRule) RuleDef {
	return RuleDef{ID: id, Input: m.InputTree, Description: description, CheckTree: check}
}

// DefaultRules returns the full rule set in reporting order.
func DefaultRules() []RuleDef {
	return []RuleDef{
		textRule(m.RuleShebang, "first line starts with #!", rules.CheckShebang),
		textRule(m.RuleEncoding, "encoding declaration after the shebang", rules.CheckEncoding),
		treeRule(m.RuleModuleDocstring, "first statement is a docstring", rules.CheckModuleDocstring),
		textRule(m.RuleImports, "file contains an import statement", rules.CheckImports),
		treeRule(m.RuleFunctionDocstring, "every function has a docstring", rules.CheckFunctionDocstring),
		treeRule(m.RuleArgumentTypeHints, "every parameter is annotated", rules.CheckArgumentTypeHints),
		treeRule(m.RuleVariableTypeHints, "function variables are annotated", rules.CheckVariableTypeHints),
		treeRule(m.RuleReturnTypeHint, "every function declares a return type", rules.CheckReturnTypeHint),
		treeRule(m.RuleNamingStyle, "snake_case functions and variables, PascalCase classes", rules.CheckNamingStyle),
		textRule(m.RuleLineLength, "lines are at most 79 characters", rules.CheckLineLength),
		textRule(m.RuleWhitespaceParenthesis, "no whitespace before '('", rules.CheckWhitespaceBeforeParenthesis),
		treeRule(m.RuleWhitespaceAssignment, "single spaces around default '='", rules.CheckWhitespaceAroundAssignment),
		treeRule(m.RuleMainBlock, "module has an entry-point guard", rules.CheckMainBlock),
		textRule(m.RuleIndentation, "indentation is a multiple of 4", rules.CheckIndentation),
	}
}
