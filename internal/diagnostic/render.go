package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how diagnostics are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// jsonDiagnostic is the wire form used by FormatJSON.
type jsonDiagnostic struct {
	Severity DiagnosticSeverity `json:"severity"`
	Code     string             `json:"code,omitempty"`
	Message  string             `json:"message"`
	Anchors  []string           `json:"anchors,omitempty"`
	File     string             `json:"file,omitempty"`
	Line     int                `json:"line,omitempty"`
	Column   int                `json:"column,omitempty"`
}

// Write renders the diagnostics in position order.
func Write(w io.Writer, d *Diagnostics, format Format) error {
	all := d.Sorted()

	switch format {
	case FormatJSON:
		out := make([]jsonDiagnostic, len(all))
		for i, diag := range all {
			out[i] = jsonDiagnostic{
				Severity: diag.Severity,
				Code:     diag.Code,
				Message:  diag.Message,
				Anchors:  diag.AnchorStrings(),
				File:     diag.Pos.File,
				Line:     diag.Pos.Line,
				Column:   diag.Pos.Column,
			}
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(out)

	case FormatText, "":
		for _, diag := range all {
			if _, err := fmt.Fprintln(w, diag.String()); err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("unknown diagnostic format %q", format)
	}
}
