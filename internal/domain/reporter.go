package domain

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	m "pepcheck.dev/pkg/pepcheck/internal/model"
)

const bannerWidth = 50

// ErrUnknownFormat is returned for an unrecognized report format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects how a report is rendered.
type Format string

// Supported report formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatText:
		return FormatText, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownFormat, name, FormatText, FormatYAML)
	}
}

// Ext returns the report file extension for the format.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}

	return ".txt"
}

// Render renders report in the requested format.
func Render(report m.FileReport, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		return []byte(RenderText(report)), nil
	case FormatYAML:
		return RenderYAML(report)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderText renders a banner naming the file followed by one section per
// rule, in result order:
//
//	<rule>: no violations
//	<rule>: N violation(s)
//	    <message>
func RenderText(report m.FileReport) string {
	var buf strings.Builder

	separator := strings.Repeat("-", bannerWidth)

	buf.WriteString(separator + "\n")
	fmt.Fprintf(&buf, "Checking file: %s\n", report.Path)
	buf.WriteString(separator + "\n")

	for _, rr := range report.Result {
		if len(rr.Findings) == 0 {
			fmt.Fprintf(&buf, "%s: no violations\n", rr.Rule)
			continue
		}

		fmt.Fprintf(&buf, "%s: %d violation(s)\n", rr.Rule, len(rr.Findings))

		for _, f := range rr.Findings {
			fmt.Fprintf(&buf, "    %s\n", f.Message)
		}
	}

	return buf.String()
}

type yamlReport struct {
	Path       m.Path   `yaml:"path"`
	Status     string   `yaml:"status"`
	Violations int      `yaml:"violations"`
	Results    m.Result `yaml:"results"`
}

// RenderYAML renders the same data as RenderText as a YAML document.
func RenderYAML(report m.FileReport) ([]byte, error) {
	doc := yamlReport{
		Path:       report.Path,
		Status:     report.Status().String(),
		Violations: report.Result.Count(),
		Results:    report.Result,
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode yaml report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml report: %w", err)
	}

	return buf.Bytes(), nil
}
