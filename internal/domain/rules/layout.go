package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

const (
	// MaxLineLength is the longest permitted line, in characters.
	MaxLineLength = 79

	// IndentWidth is the unit every indentation must be a multiple of.
	IndentWidth = 4
)

// Line based, so " (" inside a string literal matches too.
var whitespaceBeforeParen = regexp.MustCompile(`\s\(`)

// CheckLineLength flags lines longer than MaxLineLength characters.
func CheckLineLength(src *m.SourceView) []m.Finding {
	var findings []m.Finding

	for i, line := range src.Lines() {
		if utf8.RuneCountInString(line) > MaxLineLength {
			findings = append(findings, violation(m.RuleLineLength, i+1,
				"Line %d is longer than %d characters.", i+1, MaxLineLength))
		}
	}

	return findings
}

// CheckWhitespaceBeforeParenthesis flags every line with a whitespace
// character directly before an opening parenthesis.
func CheckWhitespaceBeforeParenthesis(src *m.SourceView) []m.Finding {
	var findings []m.Finding

	for i, line := range src.Lines() {
		if whitespaceBeforeParen.MatchString(line) {
			findings = append(findings, violation(m.RuleWhitespaceParenthesis, i+1,
				"Whitespace before opening parenthesis on line %d.", i+1))
		}
	}

	return findings
}

// CheckIndentation requires the leading whitespace of every line to be a
// multiple of IndentWidth. Blank and comment lines are measured as well.
func CheckIndentation(src *m.SourceView) []m.Finding {
	var findings []m.Finding

	for i, line := range src.Lines() {
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent%IndentWidth != 0 {
			findings = append(findings, violation(m.RuleIndentation, i+1,
				"Incorrect indentation at line %d: %d spaces instead of a multiple of %d.", i+1, indent, IndentWidth))
		}
	}

	return findings
}
