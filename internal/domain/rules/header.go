package rules

import (
	"strings"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

const shebangMarker = "#!"

// Encodings lists the encoding names accepted in an encoding declaration.
var Encodings = []string{
	"utf-8",
	"utf-16",
	"utf-32",
	"ascii",
	"iso-8859-1",
	"cp1252",
	"cp437",
	"euc-jp",
	"shift-jis",
}

// CheckShebang requires the first line to start with "#!".
func CheckShebang(src *m.SourceView) []m.Finding {
	first, ok := src.Line(1)
	if ok && strings.HasPrefix(first, shebangMarker) {
		return nil
	}

	line := 1
	if !ok {
		line = 0
	}

	return []m.Finding{violation(m.RuleShebang, line, "The script is missing a shebang line.")}
}

// CheckEncoding looks for an encoding name on the line following the shebang,
// or on the first line when the file has no shebang.
func CheckEncoding(src *m.SourceView) []m.Finding {
	n := 1
	if first, ok := src.Line(1); ok && strings.HasPrefix(first, shebangMarker) {
		n = 2
	}

	line, ok := src.Line(n)
	if ok {
		lower := strings.ToLower(line)
		for _, enc := range Encodings {
			if strings.Contains(lower, enc) {
				return nil
			}
		}
	}

	return []m.Finding{violation(m.RuleEncoding, n, "The script is missing an encoding declaration on line %d.", n)}
}

// CheckImports requires at least one line that starts with an import
// statement once leading whitespace is removed.
func CheckImports(src *m.SourceView) []m.Finding {
	for _, line := range src.Lines() {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "import ") || strings.HasPrefix(trimmed, "from ") {
			return nil
		}
	}

	return []m.Finding{violation(m.RuleImports, 0, "The file does not contain import statements.")}
}
