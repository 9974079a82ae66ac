package ast

import "tsbind/internal/source"

// TypeNode is an unresolved type expression: a bare or qualified name plus
// an optional list of type arguments, e.g. `Array<T>` or `i32`.
type TypeNode struct {
	Name          string
	TypeArguments []*TypeNode
	Range         source.Range
}
