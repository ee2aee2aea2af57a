// Package model defines the data structures shared by the style checker.
package model

import "strings"

// Path represents a file system path.
type Path string

// SourceView is the line-oriented view of a source file.
//
// Lines are stored 0-based and addressed 1-based. Line terminators are not
// part of a line, and a trailing newline at the end of the text does not
// produce an extra empty line.
type SourceView struct {
	lines []string
}

// NewSourceView splits text into physical lines.
func NewSourceView(text string) *SourceView {
	if text == "" {
		return &SourceView{}
	}

	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return &SourceView{lines: lines}
}

// Len returns the number of physical lines.
func (v *SourceView) Len() int {
	return len(v.lines)
}

// Line returns the 1-based line n.
func (v *SourceView) Line(n int) (string, bool) {
	if n < 1 || n > len(v.lines) {
		return "", false
	}

	return v.lines[n-1], true
}

// Lines returns a copy of all lines in order.
func (v *SourceView) Lines() []string {
	out := make([]string, len(v.lines))
	copy(out, v.lines)

	return out
}

// Empty reports whether the source has no lines at all.
func (v *SourceView) Empty() bool {
	return len(v.lines) == 0
}
