package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the rendered report unchanged.
func (s *SimpleUI) DisplayReport(ctx context.Context, _ m.FileReport, rendered []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", ensureNewline(string(rendered)))

	return nil
}

// DisplaySavedPath prints where the report of a file was written.
func (s *SimpleUI) DisplaySavedPath(ctx context.Context, report m.FileReport, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report for %s saved to %s\n", report.Path, path)
}

// DisplaySummary prints a table with the status of every checked file.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		return nil
	}

	s.printf("\n%s", renderSummaryTable(reports))

	return nil
}

func renderSummaryTable(reports []m.FileReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Status", "Violations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, report := range reports {
		count := report.Result.Count()
		if report.ParseError != nil {
			count = 0
		}

		total += count

		table.Append([]string{string(report.Path), report.Status().String(), fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(reports)),
		"",
		fmt.Sprintf("%d", total),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayRules prints the rule registry as a table.
func (s *SimpleUI) DisplayRules(ctx context.Context, rules []m.RuleInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Input", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rule := range rules {
		table.Append([]string{string(rule.ID), rule.Input.String(), rule.Description})
	}

	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayReportList prints the saved reports, one per line.
func (s *SimpleUI) DisplayReportList(ctx context.Context, dir m.Path, reports []m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found in %s\n", dir)
		return nil
	}

	s.printf("Reports in %s:\n", dir)

	for _, report := range reports {
		s.printf("  %s\n", report)
	}

	return nil
}

// DisplaySavedReport prints the content of a saved report.
func (s *SimpleUI) DisplaySavedReport(ctx context.Context, _ m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", ensureNewline(string(content)))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func ensureNewline(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}

	return text + "\n"
}
