package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pepcheck.dev/pkg/pepcheck/internal/adapter"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Engine evaluates the rule set against the contents of a single file.
type Engine interface {
	// Check runs every rule over content. A syntax error is not returned as
	// an error: it becomes the only finding of the report.
	Check(ctx context.Context, path m.Path, content []byte) (m.FileReport, error)

	// Rules describes the registered rules in reporting order.
	Rules() []m.RuleInfo
}

type engine struct {
	adapter.PythonFileAdapter
	defs []RuleDef
}

// NewEngine constructs an Engine using parser for the syntax view. Without
// explicit definitions the DefaultRules set is used.
func NewEngine(parser adapter.PythonFileAdapter, defs ...RuleDef) Engine {
	if len(defs) == 0 {
		defs = DefaultRules()
	}

	return &engine{PythonFileAdapter: parser, defs: defs}
}

func (e *engine) Rules() []m.RuleInfo {
	infos := make([]m.RuleInfo, 0, len(e.defs))
	for _, def := range e.defs {
		infos = append(infos, def.Info())
	}

	return infos
}

func (e *engine) Check(ctx context.Context, path m.Path, content []byte) (m.FileReport, error) {
	if err := ctx.Err(); err != nil {
		return m.FileReport{}, err
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	report := m.FileReport{Path: path}

	tree, err := e.Parse(ctx, content)
	if err != nil {
		var parseErr *m.ParseError
		if !errors.As(err, &parseErr) {
			return m.FileReport{}, fmt.Errorf("parse %s: %w", path, err)
		}

		slog.Debug("syntax error", "path", path, "line", parseErr.Line, "column", parseErr.Column)

		report.ParseError = parseErr
		report.Result = m.Result{{
			Rule:     m.RuleSyntax,
			Findings: []m.Finding{syntaxFinding(parseErr)},
		}}

		return report, nil
	}

	src := m.NewSourceView(string(content))
	report.Result = make(m.Result, 0, len(e.defs))

	for _, def := range e.defs {
		findings := e.run(def, src, tree)
		if findings == nil {
			findings = []m.Finding{}
		}

		report.Result = append(report.Result, m.RuleResult{Rule: def.ID, Findings: findings})
	}

	slog.Debug("checked file", "path", path, "lines", src.Len(), "violations", report.Result.Count())

	return report, nil
}

func (e *engine) run(def RuleDef, src *m.SourceView, tree *m.SyntaxView) []m.Finding {
	switch def.Input {
	case m.InputText:
		if def.CheckText != nil {
			return def.CheckText(src)
		}
	case m.InputTree:
		if def.CheckTree != nil {
			return def.CheckTree(src, tree)
		}
	}

	slog.Warn("rule has no check for its input", "rule", def.ID, "input", def.Input.String())

	return nil
}

func syntaxFinding(err *m.ParseError) m.Finding {
	return m.Finding{
		Rule:     m.RuleSyntax,
		Severity: m.SeverityWarning,
		Line:     err.Line,
		Message:  "Syntax error: " + err.Error(),
	}
}
