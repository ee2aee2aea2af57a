package model

// RuleID identifies a style rule.
type RuleID string

// Rule identifiers, in the order the engine evaluates them.
const (
	RuleShebang               RuleID = "shebang"
	RuleEncoding              RuleID = "encoding"
	RuleModuleDocstring       RuleID = "module-docstring"
	RuleImports               RuleID = "imports"
	RuleFunctionDocstring     RuleID = "function-docstring"
	RuleArgumentTypeHints     RuleID = "argument-type-hints"
	RuleVariableTypeHints     RuleID = "variable-type-hints"
	RuleReturnTypeHint        RuleID = "return-type-hint"
	RuleNamingStyle           RuleID = "naming-style"
	RuleLineLength            RuleID = "line-length"
	RuleWhitespaceParenthesis RuleID = "whitespace-before-parenthesis"
	RuleWhitespaceAssignment  RuleID = "whitespace-around-assignment"
	RuleMainBlock             RuleID = "main-block"
	RuleIndentation           RuleID = "indentation"

	// RuleSyntax carries the parse error of a file that could not be checked.
	RuleSyntax RuleID = "syntax"
)

// Severity is the weight of a finding.
type Severity string

const (
	// SeverityInfo marks an informational observation.
	SeverityInfo Severity = "info"
	// SeverityWarning marks a rule violation.
	SeverityWarning Severity = "warning"
)

// Finding is one reported rule violation.
type Finding struct {
	Rule     RuleID   `yaml:"rule"`
	Severity Severity `yaml:"severity"`
	// Line is the 1-based source line, or 0 when the finding is not tied to a line.
	Line    int    `yaml:"line,omitempty"`
	Message string `yaml:"message"`
}

// HasLine reports whether the finding points at a source line.
func (f Finding) HasLine() bool {
	return f.Line > 0
}

// RuleResult holds the findings one rule produced for one file.
// An empty Findings slice means the rule ran and found nothing.
type RuleResult struct {
	Rule     RuleID    `yaml:"rule"`
	Findings []Finding `yaml:"findings"`
}

// Result is the ordered sequence of rule results of a single check run.
type Result []RuleResult

// Lookup returns the findings of rule and whether the rule was run at all.
func (r Result) Lookup(rule RuleID) ([]Finding, bool) {
	for _, rr := range r {
		if rr.Rule == rule {
			return rr.Findings, true
		}
	}

	return nil, false
}

// Findings flattens the result into a single slice, rule by rule.
func (r Result) Findings() []Finding {
	var out []Finding
	for _, rr := range r {
		out = append(out, rr.Findings...)
	}

	return out
}

// Count returns the total number of findings.
func (r Result) Count() int {
	total := 0
	for _, rr := range r {
		total += len(rr.Findings)
	}

	return total
}

// InputKind tags the views a rule consumes.
type InputKind int

const (
	// InputText rules only read the SourceView.
	InputText InputKind = iota
	// InputTree rules read the SyntaxView, and may read the SourceView too.
	InputTree
)

// String implements fmt.Stringer.
func (k InputKind) String() string {
	switch k {
	case InputText:
		return "text"
	case InputTree:
		return "tree"
	default:
		return "unknown"
	}
}

// RuleInfo describes a registered rule for listings.
type RuleInfo struct {
	ID          RuleID
	Input       InputKind
	Description string
}
