// Package domain implements the style checking workflow: rule registry,
// engine, report rendering and batch orchestration.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"pepcheck.dev/pkg/pepcheck/internal/adapter"
	"pepcheck.dev/pkg/pepcheck/internal/controller"
	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

// Validation and outcome errors returned by Workflow.Check.
var (
	ErrNoPaths              = errors.New("no files to check")
	ErrNotAFile             = errors.New("not a regular file")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrViolationsFound      = errors.New("style violations found")
	ErrReportNameClash      = errors.New("files would be saved to the same report")
)

// DefaultExtensions lists the file extensions accepted when none are configured.
var DefaultExtensions = []string{".py"}

// CheckArgs contains the arguments for checking a batch of files.
type CheckArgs struct {
	Paths      []m.Path
	Extensions []string
	Output     m.Path
	Save       bool
	Format     Format
	Parallel   uint
	Strict     bool
}

// ViewArgs contains the arguments for viewing saved reports. An empty
// Report lists the reports found in Reports.
type ViewArgs struct {
	Reports m.Path
	Report  m.Path
}

// Workflow defines the use cases exposed to the command line.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
	View(ctx context.Context, args ViewArgs) error
	Rules(ctx context.Context) error
}

type workflow struct {
	adapter.ReportStore
	adapter.SourceFSAdapter
	controller.UI
	Engine
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	engine Engine,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Engine:          engine,
	}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	format := args.Format
	if format == "" {
		format = FormatText
	}

	if err := w.validate(args, format); err != nil {
		slog.Error("invalid check arguments", "error", err)
		return err
	}

	reports, failures, err := w.checkAll(ctx, args.Paths, args.Parallel)
	if err != nil {
		slog.Error("check failed", "error", err)
		return err
	}

	checked := make([]m.FileReport, 0, len(reports))

	for i, report := range reports {
		if failures[i] != nil {
			slog.Error("file not checked", "path", args.Paths[i], "error", failures[i])
			continue
		}

		if err := w.emit(ctx, report, format, args); err != nil {
			return err
		}

		checked = append(checked, report)
	}

	if err := w.DisplaySummary(ctx, checked); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	if err := errors.Join(failures...); err != nil {
		return err
	}

	if args.Strict {
		for _, report := range checked {
			if report.Status() != m.StatusClean {
				return ErrViolationsFound
			}
		}
	}

	return nil
}

// validate runs every path check before any file is read.
func (w *workflow) validate(args CheckArgs, format Format) error {
	if len(args.Paths) == 0 {
		return ErrNoPaths
	}

	extensions := normalizeExtensions(args.Extensions)
	reportNames := make(map[string]m.Path, len(args.Paths))

	for _, path := range args.Paths {
		info, err := w.FileInfo(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if !info.Mode().IsRegular() {
			return fmt.Errorf("%s: %w", path, ErrNotAFile)
		}

		if !hasExtension(path, extensions) {
			return fmt.Errorf("%s: %w (want one of %s)", path, ErrUnsupportedExtension, strings.Join(extensions, ", "))
		}

		if !args.Save {
			continue
		}

		name := adapter.ReportName(path, format.Ext())
		if other, ok := reportNames[name]; ok {
			return fmt.Errorf("%s and %s: %w (%s)", other, path, ErrReportNameClash, name)
		}

		reportNames[name] = path
	}

	return nil
}

// checkAll checks files concurrently and returns reports in argument order.
// A file that cannot be read or parsed leaves its error in the matching slot
// of failures and does not stop the others. Only cancellation of ctx is
// returned as err.
func (w *workflow) checkAll(ctx context.Context, paths []m.Path, parallel uint) ([]m.FileReport, []error, error) {
	reports := make([]m.FileReport, len(paths))
	failures := make([]error, len(paths))

	var group errgroup.Group
	if parallel > 0 {
		group.SetLimit(int(parallel))
	}

	for i, path := range paths {
		if ctx.Err() != nil {
			break
		}

		i, path := i, path
		group.Go(func() error {
			reports[i], failures[i] = w.checkFile(ctx, path)
			return nil
		})
	}

	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	return reports, failures, nil
}

func (w *workflow) checkFile(ctx context.Context, path m.Path) (m.FileReport, error) {
	if err := ctx.Err(); err != nil {
		return m.FileReport{}, err
	}

	slog.Debug("checking file", "path", path)

	content, err := w.ReadFile(path)
	if err != nil {
		return m.FileReport{}, fmt.Errorf("read %s: %w", path, err)
	}

	report, err := w.Engine.Check(ctx, path, content)
	if err != nil {
		return m.FileReport{}, fmt.Errorf("check %s: %w", path, err)
	}

	return report, nil
}

func (w *workflow) emit(ctx context.Context, report m.FileReport, format Format, args CheckArgs) error {
	rendered, err := Render(report, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", report.Path, err)
	}

	if !args.Save {
		if err := w.DisplayReport(ctx, report, rendered); err != nil {
			return fmt.Errorf("display %s: %w", report.Path, err)
		}

		return nil
	}

	saved, err := w.SaveReport(ctx, args.Output, report.Path, format.Ext(), rendered)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	slog.Info("report saved", "path", report.Path, "report", saved)
	w.DisplaySavedPath(ctx, report, saved)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	if args.Report != "" {
		content, err := w.LoadReport(ctx, args.Report)
		if err != nil {
			return err
		}

		return w.DisplaySavedReport(ctx, args.Report, content)
	}

	reports, err := w.ListReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	return w.DisplayReportList(ctx, args.Reports, reports)
}

func (w *workflow) Rules(ctx context.Context) error {
	return w.DisplayRules(ctx, w.Engine.Rules())
}

func normalizeExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return DefaultExtensions
	}

	out := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out = append(out, ext)
	}

	if len(out) == 0 {
		return DefaultExtensions
	}

	return out
}

func hasExtension(path m.Path, extensions []string) bool {
	ext := filepath.Ext(string(path))

	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}

	return false
}
