package ast

import "tsbind/internal/source"

// File is a single parsed source file: a path used to form file-scoped
// qualified names, plus its top-level declarations in source order.
type File struct {
	ID    source.FileID
	Path  string // the sourcePath spec.md §3/§4 concatenates into names
	Items []Decl
}
