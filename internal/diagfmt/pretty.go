// Package diagfmt renders a diag.Bag for human and machine consumption.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tsbind/internal/diag"
	"tsbind/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.FgHiBlack)
	noteColor    = color.New(color.FgBlue)
)

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty writes bag's diagnostics to w, one per line, in the order Sort
// left them in (callers call bag.Sort() first if they want file/position
// order). files maps a Range's FileID to a display path; a missing entry
// falls back to the numeric id, since this component never loads source
// text and so has no path table of its own.
func Pretty(w io.Writer, bag *diag.Bag, files map[source.FileID]string, opts PrettyOptions) {
	items := bag.Items()
	shown := items
	if opts.Max > 0 && len(shown) > opts.Max {
		shown = shown[:opts.Max]
	}
	for _, d := range shown {
		writeDiagnostic(w, d, files, opts)
	}
	if opts.Max > 0 && len(items) > opts.Max {
		fmt.Fprintf(w, "... %d more diagnostics omitted\n", len(items)-opts.Max)
	}
	errs, warns := 0, 0
	for _, d := range items {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", errs, warns)
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, files map[source.FileID]string, opts PrettyOptions) {
	loc := formatRange(d.Primary, files)
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	code := d.Code.String()
	if opts.Color {
		code = codeColor.Sprint(code)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sev, code, d.Message)
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		note := fmt.Sprintf("  note: %s: %s", formatRange(n.Range, files), n.Msg)
		if opts.Color {
			note = noteColor.Sprint(note)
		}
		fmt.Fprintln(w, note)
	}
}

func formatRange(r source.Range, files map[source.FileID]string) string {
	path, ok := files[r.File]
	if !ok {
		path = fmt.Sprintf("<file %d>", r.File)
	}
	return fmt.Sprintf("%s:%d-%d", path, r.Start, r.End)
}
