package element

import (
	"tsbind/internal/ast"
	"tsbind/internal/types"
)

// FieldPrototype represents an instance field declaration. Static fields
// are represented as Globals instead (spec.md §3) and never get a
// FieldPrototype.
type FieldPrototype struct {
	Base
	Decl  *ast.FieldDecl
	Class *ClassPrototype
}


// IsReadonly reports the READONLY flag.
func (p *FieldPrototype) IsReadonly() bool { return p.Flags.Has(FlagReadonly) }

// Field is a resolved instance field belonging to a concrete Class.
type Field struct {
	Base
	Prototype     *FieldPrototype
	Type          *types.Type
	ConstantInt   *int64
	ConstantFloat *float64
}

