package diag

import "tsbind/internal/source"

// Note attaches a secondary span with an explanatory message to a Diagnostic,
// e.g. pointing back at a previous declaration in a duplicate-identifier error.
type Note struct {
	Range source.Range
	Msg   string
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Range
	Notes    []Note
}

// WithNote returns a copy of d with an additional note appended.
func (d Diagnostic) WithNote(r source.Range, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Range: r, Msg: msg})
	return d
}
