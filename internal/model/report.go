package model

// FileReport is the outcome of checking a single file.
type FileReport struct {
	Path   Path   `yaml:"path"`
	Result Result `yaml:"results"`
	// ParseError is set when the file could not be parsed; Result then holds
	// a single syntax finding.
	ParseError *ParseError `yaml:"-"`
}

// Status summarises a report.
type Status int

const (
	// StatusClean means every rule ran without findings.
	StatusClean Status = iota
	// StatusViolations means at least one rule reported a finding.
	StatusViolations
	// StatusSyntaxError means the file could not be parsed.
	StatusSyntaxError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusClean:
		return "ok"
	case StatusViolations:
		return "violations"
	case StatusSyntaxError:
		return "syntax error"
	default:
		return "unknown"
	}
}

// Status returns the summary status of the report.
func (r FileReport) Status() Status {
	if r.ParseError != nil {
		return StatusSyntaxError
	}

	if r.Result.Count() > 0 {
		return StatusViolations
	}

	return StatusClean
}
