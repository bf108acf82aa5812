package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Diagnostics holds all findings of one validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the finding.
	Severity Severity
	// Code is a stable identifier for this kind of finding (e.g. "duplicate_field").
	Code string
	// Message is the human-readable description.
	Message string
	// Subject names what was being checked (a trait, a variant, a document).
	Subject string
	// Path is the dotted path of the offending field, if any.
	Path string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, subject, path string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, subject, path, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, subject, path string, suggestions ...string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, subject, path, suggestions))
}

// AddInfo adds an informational diagnostic.
func (d *Diagnostics) AddInfo(code, message, subject, path string, suggestions ...string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, subject, path, suggestions))
}

func newDiagnostic(sev Severity, code, message, subject, path string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		Subject:     subject,
		Path:        path,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every finding, errors first, each group ordered by path then code.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		sorted := append([]Diagnostic(nil), group...)
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Path != sorted[j].Path {
				return sorted[i].Path < sorted[j].Path
			}

			return sorted[i].Code < sorted[j].Code
		})

		all = append(all, sorted...)
	}

	return all
}

// Codes returns the codes of all error diagnostics in insertion order.
func (d *Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Subject != "" {
		prefix = append(prefix, "["+d.Subject+"]")
	}

	if d.Path != "" {
		prefix = append(prefix, d.Path)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(quoteAll(d.Suggestions), " or ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}
