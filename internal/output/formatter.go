// Package output renders dispatched requests and their outcomes for the
// terminal, with optional color.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	http "github.com/formwire/formwire/http"
)

// Formatter is responsible for formatting requests and outcomes in text format
type Formatter struct {
	Verbose bool
	NoColor bool
	scheme  *ColorScheme
}

// NewFormatter creates a new formatter with the given options
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		NoColor: noColor,
		scheme:  scheme,
	}
}

// FormatRequest formats an outbound request for display
func (f *Formatter) FormatRequest(req *http.Request) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(req.Method),
		f.scheme.URL.Sprint(req.Path)))

	if f.Verbose && len(req.Headers) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range req.Headers {
			buf.WriteString(fmt.Sprintf("    %s: %s\n", f.scheme.HeaderKey.Sprint(key), value))
		}
	}

	if req.Entity != nil {
		buf.WriteString("  Body: ")
		if strings.HasPrefix(req.ContentType, "multipart/form-data") {
			buf.WriteString(fmt.Sprintf("(multipart, %d bytes)", len(req.Entity)))
		} else {
			buf.WriteString(formatJSONString(string(req.Entity)))
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

// FormatOutcome formats a settled outcome for display
func (f *Formatter) FormatOutcome(o http.Outcome) string {
	var buf strings.Builder

	statusColor := f.scheme.StatusOK
	if !o.OK {
		statusColor = f.scheme.StatusError
	}

	if o.Status > 0 {
		buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s\n", statusColor.Sprint(o.Status)))
	} else {
		buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s\n", statusColor.Sprint("(no status)")))
	}

	if !o.OK {
		buf.WriteString(fmt.Sprintf("  %s %s\n", ErrorIcon(f.NoColor), o.Err()))
		if o.Reason != http.ReasonNone {
			buf.WriteString(fmt.Sprintf("  Reason: %s\n", f.scheme.Reason.Sprint(o.Reason)))
		}
	}

	if o.Body != nil {
		buf.WriteString("  Body:\n")
		rendered, err := json.MarshalIndent(o.Body, "  ", "  ")
		if err != nil {
			buf.WriteString(fmt.Sprintf("  %v", o.Body))
		} else {
			buf.WriteString("  " + string(rendered))
		}
		buf.WriteString("\n")
	}

	return buf.String()
}

// formatJSONString attempts to pretty-print a JSON string
func formatJSONString(s string) string {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, []byte(s), "  ", "  "); err != nil {
		return s
	}
	return prettyJSON.String()
}
