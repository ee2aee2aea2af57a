package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pepcheck.dev/pkg/pepcheck/internal/adapter"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

func views(t *testing.T, src string) (*m.SourceView, *m.SyntaxView) {
	t.Helper()

	tree, err := adapter.NewLocalPythonFileAdapter().Parse(context.Background(), []byte(src))
	require.NoError(t, err)

	return m.NewSourceView(src), tree
}

func messages(findings []m.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}

	return out
}

func lines(findings []m.Finding) []int {
	out := make([]int, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Line)
	}

	return out
}
