package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

const reportSuffix = "_analyzation_result"

// ReportStore persists rendered reports in an output directory.
type ReportStore interface {
	// SaveReport writes content for the checked file source into dir and
	// returns the path of the written report. ext includes the leading dot.
	SaveReport(ctx context.Context, dir, source m.Path, ext string, content []byte) (m.Path, error)

	// ListReports returns the saved report paths found in dir.
	ListReports(ctx context.Context, dir m.Path) ([]m.Path, error)

	// LoadReport reads a saved report.
	LoadReport(ctx context.Context, path m.Path) ([]byte, error)
}

// ReportName derives the report file name for a checked file:
// "<base-without-extension>_analyzation_result<ext>".
func ReportName(source m.Path, ext string) string {
	base := filepath.Base(string(source))
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return base + reportSuffix + ext
}

// IsReportName reports whether name looks like a file written by SaveReport.
func IsReportName(name string) bool {
	return strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), reportSuffix)
}

// LocalReportStore stores reports on the local filesystem.
type LocalReportStore struct {
	fs SourceFSAdapter
}

// NewLocalReportStore constructs a LocalReportStore writing through fs.
func NewLocalReportStore(fs SourceFSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveReport creates dir on demand and writes the report, replacing any
// previous report for the same file.
func (s *LocalReportStore) SaveReport(ctx context.Context, dir, source m.Path, ext string, content []byte) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(dir); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", dir, err)
	}

	path := s.fs.JoinPath(string(dir), ReportName(source, ext))
	if err := s.fs.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	return path, nil
}

// ListReports returns the report files in dir in lexical order. A missing
// directory yields no reports.
func (s *LocalReportStore) ListReports(ctx context.Context, dir m.Path) ([]m.Path, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := s.fs.FileInfo(dir)
	if err != nil || !info.IsDir() {
		return nil, nil //nolint:nilerr // an absent output directory has no reports
	}

	names, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read output directory %s: %w", dir, err)
	}

	var reports []m.Path

	for _, name := range names {
		if IsReportName(name) {
			reports = append(reports, s.fs.JoinPath(string(dir), name))
		}
	}

	return reports, nil
}

// LoadReport reads the report at path.
func (s *LocalReportStore) LoadReport(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	return content, nil
}
