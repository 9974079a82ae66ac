package diagfmt

import (
	"encoding/json"
	"io"

	"tsbind/internal/diag"
	"tsbind/internal/source"
)

// LocationJSON is a diagnostic's file/byte-range location for JSON output.
type LocationJSON struct {
	File  string `json:"file"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// NoteJSON is a secondary location/message pair attached to a diagnostic.
type NoteJSON struct {
	Location LocationJSON `json:"location"`
	Message  string       `json:"message"`
}

// DiagnosticJSON is a single diagnostic in JSON form.
type DiagnosticJSON struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON `json:"notes,omitempty"`
}

// DiagnosticsOutput is the JSON document's root shape.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Truncated   bool             `json:"truncated,omitempty"`
}

func makeLocation(r source.Range, files map[source.FileID]string) LocationJSON {
	path, ok := files[r.File]
	if !ok {
		path = ""
	}
	return LocationJSON{File: path, Start: r.Start, End: r.End}
}

// JSON encodes bag's diagnostics as a DiagnosticsOutput document and writes
// it to w with two-space indentation.
func JSON(w io.Writer, bag *diag.Bag, files map[source.FileID]string, opts JSONOptions) error {
	items := bag.Items()
	out := DiagnosticsOutput{Count: len(items)}
	shown := items
	if opts.Max > 0 && len(shown) > opts.Max {
		shown = shown[:opts.Max]
		out.Truncated = true
	}
	out.Diagnostics = make([]DiagnosticJSON, 0, len(shown))
	for _, d := range shown {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, files),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{
					Location: makeLocation(n.Range, files),
					Message:  n.Msg,
				})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
