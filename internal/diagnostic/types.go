package diagnostic

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"relcheck/internal/common"
	"relcheck/internal/model"
)

// Diagnostics holds all diagnostic information from a validation session.
// It implements the validator's reporter interface.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Anchors are the element, annotation and attribute value the message is attached to.
	Anchors []Anchor
	// Pos is the position of the first anchor that has one.
	Pos model.Position
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

// MarshalText renders the severity name for JSON output.
func (s DiagnosticSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Report records a diagnostic. The code is derived from the message.
func (d *Diagnostics) Report(severity DiagnosticSeverity, message string, anchors ...Anchor) {
	diag := newDiagnostic(severity, CodeFor(message), message, anchors)

	switch severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, anchors ...Anchor) {
	d.Errors = append(d.Errors, newDiagnostic(DiagnosticError, code, message, anchors))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, anchors ...Anchor) {
	d.Warnings = append(d.Warnings, newDiagnostic(DiagnosticWarning, code, message, anchors))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, anchors ...Anchor) {
	d.Infos = append(d.Infos, newDiagnostic(DiagnosticInfo, code, message, anchors))
}

func newDiagnostic(severity DiagnosticSeverity, code, message string, anchors []Anchor) Diagnostic {
	diag := Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  message,
		Anchors:  anchors,
	}

	for _, a := range anchors {
		if pos, ok := a.Position(); ok {
			diag.Pos = pos
			break
		}
	}

	return diag
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, d.Len())
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)
	all = append(all, d.Infos...)

	return all
}

// Sorted returns All ordered by position, then message. Checks may run in
// any order, so this gives renderers a stable output.
func (d *Diagnostics) Sorted() []Diagnostic {
	all := d.All()
	slices.SortStableFunc(all, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Pos.File, b.Pos.File),
			cmp.Compare(a.Pos.Line, b.Pos.Line),
			cmp.Compare(a.Pos.Column, b.Pos.Column),
			cmp.Compare(b.Severity, a.Severity),
			strings.Compare(a.Message, b.Message),
		)
	})

	return all
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

// String returns a formatted diagnostic string, e.g.
// "Parent.java:3: error: [missing_mapped_by] Missing mappedBy attribute (at Parent.getChildren(), @javax.persistence.OneToMany)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}

	b.WriteString(d.Severity.String())
	b.WriteString(": ")

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if len(d.Anchors) > 0 {
		b.WriteString(" (at ")
		b.WriteString(strings.Join(d.AnchorStrings(), ", "))
		b.WriteString(")")
	}

	return b.String()
}

// AnchorStrings renders each anchor.
func (d Diagnostic) AnchorStrings() []string {
	out := make([]string, len(d.Anchors))
	for i, a := range d.Anchors {
		out[i] = a.String()
	}

	return out
}
