package element

import (
	"tsbind/internal/ast"
	"tsbind/internal/types"
)

// Global is a module-level variable, or (per spec.md §3) a static class
// field — the two share this representation.
type Global struct {
	Base
	// Decl is *ast.VariableDecl for a top-level global, *ast.FieldDecl for a
	// promoted static field, or nil for compiler/runtime built-ins
	// registered without a backing declaration.
	Decl any
	// File is the source the declaration appeared in, nil for a built-in.
	// Needed to resolve a file-scoped type name in Decl's type annotation.
	File *ast.File
	// Type is nil until the resolver fills it in.
	Type *types.Type
	// ConstantInt/ConstantFloat mirror the declared initializer, valid when
	// FlagConstantValue is set.
	ConstantInt   *int64
	ConstantFloat *float64
}

