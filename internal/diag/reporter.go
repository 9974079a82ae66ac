package diag

import "tsbind/internal/source"

// Reporter is the minimal sink diagnostics are delivered to. Production code
// wires a BagReporter; tests may supply a func-backed Reporter to assert on
// individual emissions.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Range, msg string, notes []Note)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(code Code, sev Severity, primary source.Range, msg string, notes []Note)

func (f ReporterFunc) Report(code Code, sev Severity, primary source.Range, msg string, notes []Note) {
	f(code, sev, primary, msg, notes)
}

// ReportBuilder accumulates a diagnostic's notes before it is emitted exactly
// once. Callers write diag.ReportError(r, code, span, msg).WithNote(...).Emit().
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

func newBuilder(r Reporter, sev Severity, code Code, primary source.Range, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag: Diagnostic{
			Severity: sev,
			Code:     code,
			Message:  msg,
			Primary:  primary,
		},
	}
}

// ReportError starts building an error-severity diagnostic.
func ReportError(r Reporter, code Code, primary source.Range, msg string) *ReportBuilder {
	return newBuilder(r, SevError, code, primary, msg)
}

// ReportWarning starts building a warning-severity diagnostic.
func ReportWarning(r Reporter, code Code, primary source.Range, msg string) *ReportBuilder {
	return newBuilder(r, SevWarning, code, primary, msg)
}

// WithNote appends a secondary span/message pair.
func (b *ReportBuilder) WithNote(r source.Range, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.Notes = append(b.diag.Notes, Note{Range: r, Msg: msg})
	return b
}

// Emit sends the accumulated diagnostic to the underlying reporter. It is a
// no-op past the first call, so building and forgetting to Emit is safe but
// double-Emit never double-reports.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag.Code, b.diag.Severity, b.diag.Primary, b.diag.Message, b.diag.Notes)
	}
	b.emitted = true
}

// Diagnostic returns the accumulated diagnostic without emitting it.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Range, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes})
}
