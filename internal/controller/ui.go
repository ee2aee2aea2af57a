// Package controller provides output adapters for displaying style check results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// UI defines the interface for displaying reports and listings.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayReport prints a rendered report for a checked file.
	DisplayReport(ctx context.Context, report m.FileReport, rendered []byte) error
	// DisplaySavedPath tells the user where a report was written.
	DisplaySavedPath(ctx context.Context, report m.FileReport, path m.Path)
	// DisplaySummary prints one row per checked file.
	DisplaySummary(ctx context.Context, reports []m.FileReport) error
	// DisplayRules lists the registered rules.
	DisplayRules(ctx context.Context, rules []m.RuleInfo) error
	// DisplayReportList lists saved reports found in dir.
	DisplayReportList(ctx context.Context, dir m.Path, reports []m.Path) error
	// DisplaySavedReport shows the content of one saved report.
	DisplaySavedReport(ctx context.Context, path m.Path, content []byte) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewUI picks the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
