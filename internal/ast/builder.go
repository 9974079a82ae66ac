package ast

import "tsbind/internal/source"

// Builder assembles a *File by hand. It exists purely so tests and
// cmd/bindctl fixtures have an ergonomic way to construct AST trees without
// a real front end (spec.md §1 places lexing/parsing out of scope).
type Builder struct {
	file *File
}

// NewBuilder starts building a file at path, assigning it id.
func NewBuilder(id source.FileID, path string) *Builder {
	return &Builder{file: &File{ID: id, Path: path}}
}

// Add appends a top-level declaration in source order.
func (b *Builder) Add(d Decl) *Builder {
	b.file.Items = append(b.file.Items, d)
	return b
}

// Build returns the assembled file.
func (b *Builder) Build() *File { return b.file }

// Range is a small convenience for fixtures that don't care about exact byte
// offsets, producing a non-empty synthetic span.
func Range(file source.FileID, start, end uint32) source.Range {
	return source.Range{File: file, Start: start, End: end}
}
