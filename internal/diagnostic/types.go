package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"faculty-directory/internal/common"
)

// Diagnostics holds all diagnostic information from a build.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Kind identifies the stage that raised it.
	Kind Kind
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source identifies the file name or record id this relates to.
	Source string
	// FieldPath identifies which field this relates to (if any).
	FieldPath string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// New builds a diagnostic value without recording it.
func New(severity DiagnosticSeverity, kind Kind, code, message, source, fieldPath string) Diagnostic {
	return Diagnostic{
		Severity:  severity,
		Kind:      kind,
		Code:      code,
		Message:   message,
		Source:    source,
		FieldPath: fieldPath,
	}
}

// Add records a diagnostic under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddAll records every diagnostic in order.
func (d *Diagnostics) AddAll(diags []Diagnostic) {
	for _, diag := range diags {
		d.Add(diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(kind Kind, code, message, source, fieldPath string) {
	d.Add(New(DiagnosticError, kind, code, message, source, fieldPath))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(kind Kind, code, message, source, fieldPath string) {
	d.Add(New(DiagnosticWarning, kind, code, message, source, fieldPath))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(kind Kind, code, message, source, fieldPath string) {
	d.Add(New(DiagnosticInfo, kind, code, message, source, fieldPath))
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasKind reports whether any error of the given kind was recorded.
func (d *Diagnostics) HasKind(kind Kind) bool {
	for _, e := range d.Errors {
		if e.Kind == kind {
			return true
		}
	}

	return false
}

// All returns errors, then warnings, then infos, each in recording order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// HasErrors reports whether any diagnostic in the slice is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == DiagnosticError {
			return true
		}
	}

	return false
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, "["+d.Source+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
