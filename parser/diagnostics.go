package parser

import "fmt"

// Severity classifies diagnostics.
type Severity int8

// Severities of diagnostics. Warnings cause at most a single line to be
// skipped, errors count towards MaxErrors.
const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a message about a problem in a Compose file, together with
// its source position.
type Diagnostic struct {
	Severity Severity
	File     string
	Line     int
	Column   int
	Message  string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
}

// trace writes a diagnostic to the syntax tracer.
func (d Diagnostic) trace() {
	if d.Severity == SeverityError {
		T().Errorf("%s", d.Error())
		return
	}
	T().Infof("%s", d.Error())
}
