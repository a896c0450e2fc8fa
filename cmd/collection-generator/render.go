package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"collection-generator/internal/diagnostic"
	"collection-generator/internal/driver"
)

var (
	severityColor = map[diagnostic.Severity]*color.Color{
		diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
		diagnostic.SeverityWarning: color.New(color.FgYellow, color.Bold),
	}

	posColor    = color.New(color.Faint)
	detailColor = color.New(color.FgCyan)
)

// renderDiagnostics writes one block per diagnostic in rustc-like layout:
// the headline with severity and code, then indented help, note and
// suggestion lines.
func renderDiagnostics(w io.Writer, diags diagnostic.List) {
	for _, d := range diags {
		sev := severityColor[d.Severity]
		if sev == nil {
			sev = color.New(color.Bold)
		}

		fmt.Fprintf(w, "%s[%s]: %s\n", sev.Sprint(d.Severity), d.Code, d.Message)
		fmt.Fprintf(w, "  %s %s\n", posColor.Sprint("-->"), d.Pos)

		if d.Help != "" {
			fmt.Fprintf(w, "  %s %s\n", detailColor.Sprint("help:"), d.Help)
		}

		if d.Note != "" {
			fmt.Fprintf(w, "  %s %s\n", detailColor.Sprint("note:"), d.Note)
		}

		if d.Suggestion.Text != "" {
			fmt.Fprintf(w, "  %s %s\n", detailColor.Sprint("suggestion:"), d.Suggestion.Text)
		}

		fmt.Fprintln(w)
	}
}

// renderShapeError reports a collection whose shape could not be resolved
// at all, e.g. conflicting field modifiers.
func renderShapeError(w io.Writer, s driver.ShapeResult) {
	sev := severityColor[diagnostic.SeverityError]

	fmt.Fprintf(w, "%s: %v\n", sev.Sprint("error"), s.Err)
	fmt.Fprintf(w, "  %s %s\n\n", posColor.Sprint("-->"), s.Shape.Pos)
}
