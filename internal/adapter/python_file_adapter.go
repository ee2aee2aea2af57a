package adapter

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// PythonFileAdapter encapsulates Python parsing so the domain layer can focus
// on style rules while delegating grammar details to an infrastructure
// component.
type PythonFileAdapter interface {
	// Parse builds the syntax view of src. Source that is not valid Python
	// fails with a *model.ParseError.
	Parse(ctx context.Context, src []byte) (*m.SyntaxView, error)
}

// LocalPythonFileAdapter provides a concrete PythonFileAdapter backed by the
// tree-sitter Python grammar.
type LocalPythonFileAdapter struct{}

// NewLocalPythonFileAdapter constructs a LocalPythonFileAdapter.
func NewLocalPythonFileAdapter() *LocalPythonFileAdapter {
	return &LocalPythonFileAdapter{}
}

// Parse builds the syntax view for the provided source.
func (a *LocalPythonFileAdapter) Parse(ctx context.Context, src []byte) (*m.SyntaxView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, firstSyntaxError(root)
	}

	b := builder{src: src}

	return &m.SyntaxView{Module: m.Module{Body: b.statements(root)}}, nil
}

// firstSyntaxError locates the first ERROR or MISSING node in source order.
func firstSyntaxError(root *sitter.Node) *m.ParseError {
	var found *sitter.Node

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		if found != nil || n == nil || !n.HasError() && !n.IsMissing() {
			return
		}

		if n.IsError() || n.IsMissing() {
			// Prefer a more precise descendant if one exists.
			for i := 0; i < int(n.ChildCount()); i++ {
				visit(n.Child(i))
			}

			if found == nil {
				found = n
			}

			return
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			visit(n.Child(i))
		}
	}

	visit(root)

	if found == nil {
		return &m.ParseError{Msg: "invalid syntax"}
	}

	msg := "invalid syntax"
	if found.IsMissing() {
		msg = fmt.Sprintf("missing %q", found.Type())
	}

	return &m.ParseError{Line: positionOf(found).Line, Column: positionOf(found).Column, Msg: msg}
}

func positionOf(n *sitter.Node) m.Position {
	p := n.StartPoint()
	return m.Position{Line: int(p.Row) + 1, Column: int(p.Column)}
}

func endPositionOf(n *sitter.Node) m.Position {
	p := n.EndPoint()
	return m.Position{Line: int(p.Row) + 1, Column: int(p.Column)}
}

// builder converts tree-sitter nodes into syntax view nodes.
type builder struct {
	src []byte
}

func (b builder) text(n *sitter.Node) string {
	return n.Content(b.src)
}

// statements converts the named, non-comment children of a module or block.
func (b builder) statements(parent *sitter.Node) []m.Stmt {
	var out []m.Stmt

	for i := 0; i < int(parent.NamedChildCount()); i++ {
		child := parent.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}

		if stmt := b.statement(child); stmt != nil {
			out = append(out, stmt)
		}
	}

	return out
}

func (b builder) statement(n *sitter.Node) m.Stmt {
	switch n.Type() {
	case "function_definition":
		return b.functionDef(n)
	case "class_definition":
		return b.classDef(n)
	case "decorated_definition":
		if def := n.ChildByFieldName("definition"); def != nil {
			return b.statement(def)
		}

		return &m.Simple{Position: positionOf(n), Kind: n.Type()}
	case "if_statement":
		return b.ifStmt(n)
	case "expression_statement":
		return b.expressionStmt(n)
	}

	if body := b.nestedBlocks(n); body != nil {
		return &m.Compound{Position: positionOf(n), Kind: n.Type(), Body: body}
	}

	return &m.Simple{Position: positionOf(n), Kind: n.Type()}
}

// nestedBlocks collects the statements of every block owned by n, in source
// order, without descending into the blocks themselves.
func (b builder) nestedBlocks(n *sitter.Node) []m.Stmt {
	var out []m.Stmt

	found := false

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "block" {
			found = true
			out = append(out, b.statements(child)...)

			continue
		}

		if nested := b.nestedBlocks(child); nested != nil {
			found = true
			out = append(out, nested...)
		}
	}

	if !found {
		return nil
	}

	if out == nil {
		out = []m.Stmt{}
	}

	return out
}

func (b builder) body(n *sitter.Node, field string) []m.Stmt {
	block := n.ChildByFieldName(field)
	if block == nil {
		return nil
	}

	if block.Type() != "block" {
		if stmt := b.statement(block); stmt != nil {
			return []m.Stmt{stmt}
		}

		return nil
	}

	return b.statements(block)
}

func (b builder) functionDef(n *sitter.Node) *m.FunctionDef {
	fn := &m.FunctionDef{
		Position:            positionOf(n),
		HasReturnAnnotation: n.ChildByFieldName("return_type") != nil,
		Body:                b.body(n, "body"),
	}

	if name := n.ChildByFieldName("name"); name != nil {
		fn.Name = b.text(name)
	}

	if n.ChildCount() > 0 && n.Child(0).Type() == "async" {
		fn.Async = true
	}

	if params := n.ChildByFieldName("parameters"); params != nil {
		fn.Params = b.parameters(params)
	}

	return fn
}

func (b builder) parameters(n *sitter.Node) []m.Parameter {
	var out []m.Parameter

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)

		if p, ok := b.parameter(child); ok {
			out = append(out, p)
		}
	}

	return out
}

func (b builder) parameter(n *sitter.Node) (m.Parameter, bool) {
	p := m.Parameter{Position: positionOf(n)}

	switch n.Type() {
	case "identifier":
		p.Name = b.text(n)
	case "list_splat_pattern", "dictionary_splat_pattern":
		p.Name, p.Kind = b.splat(n)
	case "typed_parameter":
		p.HasAnnotation = true

		for i := 0; i < int(n.NamedChildCount()) && p.Name == ""; i++ {
			child := n.NamedChild(i)

			switch child.Type() {
			case "identifier":
				p.Name = b.text(child)
			case "list_splat_pattern", "dictionary_splat_pattern":
				p.Name, p.Kind = b.splat(child)
			}
		}
	case "default_parameter", "typed_default_parameter":
		p.HasAnnotation = n.ChildByFieldName("type") != nil

		name := n.ChildByFieldName("name")
		value := n.ChildByFieldName("value")

		if name != nil {
			p.Name = b.text(name)
			p.NameEnd = endPositionOf(name)
		}

		if value != nil {
			def := b.expr(value)
			p.Default = &def
			p.DefaultStart = positionOf(value)
		}
	default:
		// Separators (* and /), comments and legacy tuple parameters.
		return m.Parameter{}, false
	}

	return p, true
}

func (b builder) splat(n *sitter.Node) (string, m.ParamKind) {
	kind := m.ParamVarArgs
	if n.Type() == "dictionary_splat_pattern" {
		kind = m.ParamKwArgs
	}

	if n.NamedChildCount() > 0 {
		return b.text(n.NamedChild(0)), kind
	}

	return strings.TrimLeft(b.text(n), "*"), kind
}

func (b builder) classDef(n *sitter.Node) *m.ClassDef {
	cls := &m.ClassDef{Position: positionOf(n), Body: b.body(n, "body")}
	if name := n.ChildByFieldName("name"); name != nil {
		cls.Name = b.text(name)
	}

	return cls
}

// ifStmt folds elif clauses into nested If statements on the Else branch.
func (b builder) ifStmt(n *sitter.Node) *m.If {
	stmt := &m.If{Position: positionOf(n), Body: b.body(n, "consequence")}
	if cond := n.ChildByFieldName("condition"); cond != nil {
		stmt.Condition = b.expr(cond)
	}

	tail := stmt

	for i := 0; i < int(n.NamedChildCount()); i++ {
		clause := n.NamedChild(i)

		switch clause.Type() {
		case "elif_clause":
			elif := &m.If{Position: positionOf(clause), Body: b.body(clause, "consequence")}
			if cond := clause.ChildByFieldName("condition"); cond != nil {
				elif.Condition = b.expr(cond)
			}

			tail.Else = []m.Stmt{elif}
			tail = elif
		case "else_clause":
			tail.Else = b.body(clause, "body")
		}
	}

	return stmt
}

func (b builder) expressionStmt(n *sitter.Node) m.Stmt {
	var exprs []*sitter.Node

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "comment" {
			exprs = append(exprs, child)
		}
	}

	if len(exprs) == 1 && exprs[0].Type() == "assignment" {
		return b.assign(exprs[0])
	}

	if len(exprs) == 1 {
		return &m.ExprStmt{Position: positionOf(n), Value: b.expr(exprs[0])}
	}

	// Bare tuples (a, b) and other multi-expression statements.
	return &m.ExprStmt{Position: positionOf(n), Value: m.Expr{Kind: m.ExprOther, Text: b.text(n)}}
}

// assign flattens chained assignments (a = b = 1) into one Assign with
// several targets.
func (b builder) assign(n *sitter.Node) *m.Assign {
	stmt := &m.Assign{Position: positionOf(n)}

	for cur := n; cur != nil && cur.Type() == "assignment"; cur = cur.ChildByFieldName("right") {
		if cur.ChildByFieldName("type") != nil {
			stmt.Annotated = true
		}

		if left := cur.ChildByFieldName("left"); left != nil {
			stmt.Targets = append(stmt.Targets, b.target(left))
		}
	}

	return stmt
}

func (b builder) target(n *sitter.Node) m.Target {
	switch n.Type() {
	case "identifier":
		return m.Target{Name: b.text(n), Kind: m.TargetName}
	case "attribute":
		return m.Target{Name: b.text(n), Kind: m.TargetAttribute}
	case "subscript":
		return m.Target{Name: b.text(n), Kind: m.TargetSubscript}
	default:
		return m.Target{Name: b.text(n), Kind: m.TargetOther}
	}
}

func (b builder) expr(n *sitter.Node) m.Expr {
	text := b.text(n)

	switch n.Type() {
	case "parenthesized_expression":
		for i := 0; i < int(n.NamedChildCount()); i++ {
			if inner := n.NamedChild(i); inner.Type() != "comment" {
				return b.expr(inner)
			}
		}
	case "identifier":
		return m.Expr{Kind: m.ExprName, Text: text, Value: text}
	case "string":
		kind, value := decodeStringLiteral(text)
		return m.Expr{Kind: kind, Text: text, Value: value}
	case "concatenated_string":
		return b.concatenated(n)
	case "integer", "float":
		return m.Expr{Kind: m.ExprNumber, Text: text}
	case "true", "false":
		return m.Expr{Kind: m.ExprBool, Text: text}
	case "none":
		return m.Expr{Kind: m.ExprNone, Text: text}
	case "ellipsis":
		return m.Expr{Kind: m.ExprEllipsis, Text: text}
	case "comparison_operator":
		return b.comparison(n)
	}

	return m.Expr{Kind: m.ExprOther, Text: text}
}

func (b builder) concatenated(n *sitter.Node) m.Expr {
	out := m.Expr{Kind: m.ExprString, Text: b.text(n)}

	var value strings.Builder

	for i := 0; i < int(n.NamedChildCount()); i++ {
		part := n.NamedChild(i)
		if part.Type() != "string" {
			continue
		}

		kind, v := decodeStringLiteral(b.text(part))
		if kind != m.ExprString {
			out.Kind = kind
		}

		value.WriteString(v)
	}

	out.Value = value.String()

	return out
}

// comparison splits a comparison chain into operands (named children) and
// operators (anonymous children).
func (b builder) comparison(n *sitter.Node) m.Expr {
	out := m.Expr{Kind: m.ExprCompare, Text: b.text(n)}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)

		switch {
		case child.Type() == "comment":
			continue
		case child.IsNamed():
			out.Operands = append(out.Operands, b.expr(child))
		default:
			op := child.Type()
			// "not in" and "is not" may surface as two tokens.
			if last := len(out.Ops) - 1; last >= 0 && len(out.Operands) == len(out.Ops) {
				out.Ops[last] += " " + op
				continue
			}

			out.Ops = append(out.Ops, op)
		}
	}

	return out
}

// decodeStringLiteral strips the prefix and quotes of a single string
// literal. f-strings are reported as ExprOther since they are not constants.
func decodeStringLiteral(text string) (m.ExprKind, string) {
	prefixEnd := strings.IndexAny(text, `"'`)
	if prefixEnd < 0 {
		return m.ExprOther, ""
	}

	prefix := strings.ToLower(text[:prefixEnd])
	body := text[prefixEnd:]

	kind := m.ExprString

	switch {
	case strings.Contains(prefix, "f"):
		kind = m.ExprOther
	case strings.Contains(prefix, "b"):
		kind = m.ExprBytes
	}

	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if len(body) >= 2*len(quote) && strings.HasPrefix(body, quote) && strings.HasSuffix(body, quote) {
			return kind, body[len(quote) : len(body)-len(quote)]
		}
	}

	return kind, body
}
