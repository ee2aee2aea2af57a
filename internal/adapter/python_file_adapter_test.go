package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

func parsePython(t *testing.T, src string) *m.SyntaxView {
	t.Helper()

	view, err := NewLocalPythonFileAdapter().Parse(context.Background(), []byte(src))
	require.NoError(t, err)
	require.NotNil(t, view)

	return view
}

func TestLocalPythonFileAdapter_Parse_Parameters(t *testing.T) {
	src := "def f(self, a: int, b=1, c: str = \"x\", *args, **kwargs) -> None:\n" +
		"    \"\"\"doc\"\"\"\n" +
		"    return None\n"

	view := parsePython(t, src)
	require.Len(t, view.Module.Body, 1)

	fn, ok := view.Module.Body[0].(*m.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	assert.True(t, fn.HasReturnAnnotation)
	assert.False(t, fn.Async)
	assert.Equal(t, 1, fn.Line)

	require.Len(t, fn.Params, 6)

	names := make([]string, 0, len(fn.Params))
	for _, p := range fn.Params {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"self", "a", "b", "c", "args", "kwargs"}, names)

	assert.False(t, fn.Params[0].HasAnnotation)
	assert.True(t, fn.Params[1].HasAnnotation)
	assert.False(t, fn.Params[2].HasAnnotation)
	assert.True(t, fn.Params[3].HasAnnotation)
	assert.Equal(t, m.ParamVarArgs, fn.Params[4].Kind)
	assert.Equal(t, m.ParamKwArgs, fn.Params[5].Kind)

	require.NotNil(t, fn.Params[2].Default)
	assert.Equal(t, m.ExprNumber, fn.Params[2].Default.Kind)
	require.NotNil(t, fn.Params[3].Default)
	assert.Equal(t, m.ExprString, fn.Params[3].Default.Kind)
	assert.Equal(t, "x", fn.Params[3].Default.Value)
	assert.Nil(t, fn.Params[0].Default)
}

func TestLocalPythonFileAdapter_Parse_DefaultPositions(t *testing.T) {
	view := parsePython(t, "def f(b=1, c = None):\n    pass\n")

	fn := view.Module.Body[0].(*m.FunctionDef)
	require.Len(t, fn.Params, 2)

	b := fn.Params[0]
	assert.Equal(t, m.Position{Line: 1, Column: 7}, b.NameEnd)
	assert.Equal(t, m.Position{Line: 1, Column: 8}, b.DefaultStart)

	c := fn.Params[1]
	assert.Equal(t, m.Position{Line: 1, Column: 12}, c.NameEnd)
	assert.Equal(t, m.Position{Line: 1, Column: 15}, c.DefaultStart)
	assert.Equal(t, m.ExprNone, c.Default.Kind)
}

func TestLocalPythonFileAdapter_Parse_Assignments(t *testing.T) {
	src := "a = b = 1\n" +
		"x: int = 2\n" +
		"obj.attr = 3\n" +
		"items[0] = 4\n" +
		"total += 1\n"

	view := parsePython(t, src)
	require.Len(t, view.Module.Body, 5)

	chained := view.Module.Body[0].(*m.Assign)
	assert.Equal(t, []m.Target{{Name: "a", Kind: m.TargetName}, {Name: "b", Kind: m.TargetName}}, chained.Targets)
	assert.False(t, chained.Annotated)

	annotated := view.Module.Body[1].(*m.Assign)
	assert.True(t, annotated.Annotated)
	assert.Equal(t, "x", annotated.Targets[0].Name)
	assert.Equal(t, 2, annotated.Line)

	assert.Equal(t, m.TargetAttribute, view.Module.Body[2].(*m.Assign).Targets[0].Kind)
	assert.Equal(t, m.TargetSubscript, view.Module.Body[3].(*m.Assign).Targets[0].Kind)

	_, isAssign := view.Module.Body[4].(*m.Assign)
	assert.False(t, isAssign, "augmented assignment is not an Assign")
}

func TestLocalPythonFileAdapter_Parse_MainGuard(t *testing.T) {
	view := parsePython(t, "if (__name__ == \"__main__\"):\n    main()\nelif x:\n    pass\nelse:\n    pass\n")

	stmt, ok := view.Module.Body[0].(*m.If)
	require.True(t, ok)

	cond := stmt.Condition
	assert.Equal(t, m.ExprCompare, cond.Kind)
	assert.Equal(t, []string{"=="}, cond.Ops)
	require.Len(t, cond.Operands, 2)
	assert.Equal(t, m.ExprName, cond.Operands[0].Kind)
	assert.Equal(t, "__name__", cond.Operands[0].Value)
	assert.Equal(t, m.ExprString, cond.Operands[1].Kind)
	assert.Equal(t, "__main__", cond.Operands[1].Value)

	require.Len(t, stmt.Else, 1)
	elif, ok := stmt.Else[0].(*m.If)
	require.True(t, ok)
	assert.Equal(t, 3, elif.Line)
	assert.Len(t, elif.Else, 1)
}

func TestLocalPythonFileAdapter_Parse_CompareOperators(t *testing.T) {
	view := parsePython(t, "a not in b\nc is not d\n")

	assert.Equal(t, []string{"not in"}, view.Module.Body[0].(*m.ExprStmt).Value.Ops)
	assert.Equal(t, []string{"is not"}, view.Module.Body[1].(*m.ExprStmt).Value.Ops)
}

func TestLocalPythonFileAdapter_Parse_NestedDefinitions(t *testing.T) {
	src := "import os\n" +
		"\n" +
		"class Shape:\n" +
		"    def area(self):\n" +
		"        return 0\n" +
		"\n" +
		"for i in range(3):\n" +
		"    def inner():\n" +
		"        pass\n" +
		"\n" +
		"@decorator\n" +
		"async def fetch():\n" +
		"    def helper():\n" +
		"        pass\n"

	view := parsePython(t, src)

	var names []string
	for _, fn := range view.Functions() {
		names = append(names, fn.Name)
	}

	assert.Equal(t, []string{"area", "inner", "fetch", "helper"}, names)

	cls, ok := view.Module.Body[1].(*m.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "Shape", cls.Name)

	loop, ok := view.Module.Body[2].(*m.Compound)
	require.True(t, ok)
	assert.Equal(t, "for_statement", loop.Kind)

	fetch := view.Module.Body[3].(*m.FunctionDef)
	assert.True(t, fetch.Async)
}

func TestLocalPythonFileAdapter_Parse_StringLiterals(t *testing.T) {
	view := parsePython(t, "\"\"\"doc\"\"\"\nb'raw'\nf\"{x}\"\n'a' 'b'\n")

	kinds := make([]m.ExprKind, 0, 4)
	for _, stmt := range view.Module.Body {
		kinds = append(kinds, stmt.(*m.ExprStmt).Value.Kind)
	}

	assert.Equal(t, []m.ExprKind{m.ExprString, m.ExprBytes, m.ExprOther, m.ExprString}, kinds)
	assert.Equal(t, "doc", view.Module.Body[0].(*m.ExprStmt).Value.Value)
	assert.Equal(t, "ab", view.Module.Body[3].(*m.ExprStmt).Value.Value)
}

func TestLocalPythonFileAdapter_Parse_Empty(t *testing.T) {
	view := parsePython(t, "")
	assert.Empty(t, view.Module.Body)
}

func TestLocalPythonFileAdapter_Parse_InvalidSource(t *testing.T) {
	_, err := NewLocalPythonFileAdapter().Parse(context.Background(), []byte("x = 1\ndef f(:\n    pass\n"))
	require.Error(t, err)

	var parseErr *m.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.NotEmpty(t, parseErr.Msg)
}

func TestLocalPythonFileAdapter_Parse_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalPythonFileAdapter().Parse(ctx, []byte("x = 1\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeStringLiteral(t *testing.T) {
	tests := []struct {
		text  string
		kind  m.ExprKind
		value string
	}{
		{`"x"`, m.ExprString, "x"},
		{`'x'`, m.ExprString, "x"},
		{`"""x"""`, m.ExprString, "x"},
		{`r"\d"`, m.ExprString, `\d`},
		{`B"x"`, m.ExprBytes, "x"},
		{`rb'x'`, m.ExprBytes, "x"},
		{`F"x"`, m.ExprOther, "x"},
		{`""`, m.ExprString, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			kind, value := decodeStringLiteral(tt.text)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.value, value)
		})
	}
}
