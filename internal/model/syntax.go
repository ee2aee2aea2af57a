package model

import "fmt"

// Position is the start of a syntax node: a 1-based line and a 0-based byte
// column within that line.
type Position struct {
	Line   int
	Column int
}

// Start returns the position itself so that embedding types satisfy Node.
func (p Position) Start() Position {
	return p
}

// Node is implemented by every syntax view node.
type Node interface {
	Start() Position
}

// Stmt is a statement of the syntax view.
type Stmt interface {
	Node
	stmtNode()
}

// SyntaxView is the parsed representation of a Python module.
type SyntaxView struct {
	Module Module
}

// Module is the root of the syntax view.
type Module struct {
	Body []Stmt
}

// ParamKind distinguishes regular parameters from star parameters.
type ParamKind int

const (
	// ParamPlain is a positional-or-keyword (or keyword-only) parameter.
	ParamPlain ParamKind = iota
	// ParamVarArgs is a *args parameter.
	ParamVarArgs
	// ParamKwArgs is a **kwargs parameter.
	ParamKwArgs
)

// Parameter is a single function parameter.
type Parameter struct {
	Position
	Name          string
	Kind          ParamKind
	HasAnnotation bool
	// Default is nil when the parameter has no default value.
	Default *Expr
	// NameEnd and DefaultStart delimit the text between the parameter name
	// and its default value. Both are zero when Default is nil.
	NameEnd      Position
	DefaultStart Position
}

// FunctionDef is a def or async def statement.
type FunctionDef struct {
	Position
	Name                string
	Async               bool
	Params              []Parameter
	HasReturnAnnotation bool
	Body                []Stmt
}

// ClassDef is a class statement.
type ClassDef struct {
	Position
	Name string
	Body []Stmt
}

// TargetKind classifies an assignment target.
type TargetKind int

const (
	// TargetName is a plain identifier.
	TargetName TargetKind = iota
	// TargetAttribute is obj.attr.
	TargetAttribute
	// TargetSubscript is obj[key].
	TargetSubscript
	// TargetOther covers tuple, list and starred targets.
	TargetOther
)

// Target is one assignment target.
type Target struct {
	Name string
	Kind TargetKind
}

// Assign is a plain (x = 1), chained (x = y = 1) or annotated (x: int = 1)
// assignment.
type Assign struct {
	Position
	Targets   []Target
	Annotated bool
}

// If is an if statement. Elif and else branches are folded into Else.
type If struct {
	Position
	Condition Expr
	Body      []Stmt
	Else      []Stmt
}

// ExprStmt is a bare expression used as a statement.
type ExprStmt struct {
	Position
	Value Expr
}

// Compound is any other statement that owns nested blocks (for, while, with,
// try, match). Its blocks are flattened into Body in source order.
type Compound struct {
	Position
	Kind string
	Body []Stmt
}

// Simple is any other statement without nested blocks.
type Simple struct {
	Position
	Kind string
}

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Assign) stmtNode()      {}
func (*If) stmtNode()          {}
func (*ExprStmt) stmtNode()    {}
func (*Compound) stmtNode()    {}
func (*Simple) stmtNode()      {}

// ExprKind classifies an expression.
type ExprKind int

const (
	// ExprOther is any expression the rules do not inspect.
	ExprOther ExprKind = iota
	// ExprName is an identifier.
	ExprName
	// ExprString is a str literal (plain, raw or unicode; concatenations included).
	ExprString
	// ExprBytes is a bytes literal.
	ExprBytes
	// ExprNumber is an int, float or complex literal.
	ExprNumber
	// ExprBool is True or False.
	ExprBool
	// ExprNone is None.
	ExprNone
	// ExprEllipsis is the ... literal.
	ExprEllipsis
	// ExprCompare is a comparison chain.
	ExprCompare
)

// Expr is an expression of the syntax view.
type Expr struct {
	Kind ExprKind
	// Text is the raw source of the expression.
	Text string
	// Value holds the identifier of a name or the content of a string literal.
	Value string
	// Ops and Operands describe a comparison chain: len(Operands) == len(Ops)+1.
	Ops      []string
	Operands []Expr
}

// IsLiteral reports whether the expression is a constant literal.
func (e Expr) IsLiteral() bool {
	switch e.Kind {
	case ExprString, ExprBytes, ExprNumber, ExprBool, ExprNone, ExprEllipsis:
		return true
	default:
		return false
	}
}

// ParseError reports source text that is not valid Python.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}

	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column+1, e.Msg)
}

// Inspect walks body in source order and calls fn for every statement,
// descending into nested bodies while fn returns true.
func Inspect(body []Stmt, fn func(Stmt) bool) {
	for _, stmt := range body {
		if !fn(stmt) {
			continue
		}

		switch s := stmt.(type) {
		case *FunctionDef:
			Inspect(s.Body, fn)
		case *ClassDef:
			Inspect(s.Body, fn)
		case *If:
			Inspect(s.Body, fn)
			Inspect(s.Else, fn)
		case *Compound:
			Inspect(s.Body, fn)
		}
	}
}

// Functions returns every function definition of the module in pre-order,
// methods and nested functions included.
func (v *SyntaxView) Functions() []*FunctionDef {
	var out []*FunctionDef

	Inspect(v.Module.Body, func(s Stmt) bool {
		if fn, ok := s.(*FunctionDef); ok {
			out = append(out, fn)
		}

		return true
	})

	return out
}
