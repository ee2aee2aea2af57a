package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResult() Result {
	return Result{
		{Rule: RuleShebang, Findings: []Finding{}},
		{Rule: RuleImports, Findings: []Finding{{Rule: RuleImports, Message: "no imports"}}},
		{Rule: RuleLineLength, Findings: []Finding{
			{Rule: RuleLineLength, Line: 3, Message: "long"},
			{Rule: RuleLineLength, Line: 9, Message: "long"},
		}},
	}
}

func TestResult_Lookup(t *testing.T) {
	result := sampleResult()

	findings, ok := result.Lookup(RuleShebang)
	assert.True(t, ok)
	assert.NotNil(t, findings)
	assert.Empty(t, findings)

	findings, ok = result.Lookup(RuleLineLength)
	assert.True(t, ok)
	assert.Len(t, findings, 2)

	findings, ok = result.Lookup(RuleMainBlock)
	assert.False(t, ok)
	assert.Nil(t, findings)
}

func TestResult_FindingsAndCount(t *testing.T) {
	result := sampleResult()

	assert.Equal(t, 3, result.Count())

	var lines []int
	for _, f := range result.Findings() {
		lines = append(lines, f.Line)
	}

	assert.Equal(t, []int{0, 3, 9}, lines)
	assert.Zero(t, Result{}.Count())
	assert.Empty(t, Result{}.Findings())
}

func TestFinding_HasLine(t *testing.T) {
	assert.False(t, Finding{}.HasLine())
	assert.True(t, Finding{Line: 1}.HasLine())
}

func TestInputKind_String(t *testing.T) {
	assert.Equal(t, "text", InputText.String())
	assert.Equal(t, "tree", InputTree.String())
	assert.Equal(t, "unknown", InputKind(7).String())
}
