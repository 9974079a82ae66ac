package diagfmt

// PrettyOptions configures Pretty's rendering of a diagnostic bag.
type PrettyOptions struct {
	// Color enables ANSI severity coloring. Callers typically gate this on
	// whether stdout is a terminal.
	Color bool
	// ShowNotes prints each diagnostic's attached notes indented beneath it.
	ShowNotes bool
	// Max caps how many diagnostics are printed, 0 means unlimited. The
	// count line always reports the true total regardless of the cap.
	Max int
}

// JSONOptions configures JSON's rendering of a diagnostic bag.
type JSONOptions struct {
	IncludeNotes bool
	Max          int
}
