package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pepcheck.dev/pkg/pepcheck/internal/domain"
	domainmocks "pepcheck.dev/pkg/pepcheck/internal/domain/mocks"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

func newTestCheckCmd(t *testing.T) (*domainmocks.MockWorkflow, func(args ...string) error) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow, func(args ...string) error {
		cmd.SetArgs(args)
		return cmd.Execute()
	}
}

func TestCheckCmd_Defaults(t *testing.T) {
	mockWorkflow, execute := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Paths) == 1 &&
			args.Paths[0] == m.Path("script.py") &&
			args.Output == m.Path(defaultReportsDir) &&
			!args.Save &&
			args.Format == domain.FormatText &&
			args.Parallel == defaultParallel &&
			!args.Strict &&
			assert.ObjectsAreEqual([]string{".py"}, args.Extensions)
	})).Return(nil).Once()

	require.NoError(t, execute("check", "script.py"))
}

func TestCheckCmd_PassesFlags(t *testing.T) {
	mockWorkflow, execute := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Paths) == 3 &&
			args.Paths[0] == m.Path("b.py") &&
			args.Paths[1] == m.Path("a.py") &&
			args.Paths[2] == m.Path("c.pyw") &&
			args.Output == m.Path("./reports") &&
			args.Save &&
			args.Format == domain.FormatYAML &&
			args.Parallel == 4 &&
			args.Strict &&
			assert.ObjectsAreEqual([]string{".py", ".pyw"}, args.Extensions)
	})).Return(nil).Once()

	require.NoError(t, execute(
		"--output", "./reports",
		"check", "-s", "-f", "yaml", "-p", "4", "--strict",
		"-e", ".py", "-e", ".pyw",
		"b.py", "a.py", "c.pyw",
	))
}

func TestCheckCmd_RequiresPaths(t *testing.T) {
	_, execute := newTestCheckCmd(t)

	require.Error(t, execute("check"))
}

func TestCheckCmd_RejectsUnknownFormat(t *testing.T) {
	_, execute := newTestCheckCmd(t)

	err := execute("check", "-f", "xml", "script.py")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestCheckCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow, execute := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.ErrUnsupportedExtension).Once()

	err := execute("check", "notes.txt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedExtension)
}

func TestNewCheckCmd(t *testing.T) {
	cmd := newCheckCmd()

	assert.Equal(t, "check <file>...", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, checkLongDescription, cmd.Long)

	for _, name := range []string{saveFlagName, formatFlagName, parallelFlagName, strictFlagName, extensionsFlagName} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
