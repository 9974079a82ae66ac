// Package ast is the seam the binder consumes across (spec.md §1: "Out of
// scope: lexing and parsing"). It defines the declaration and expression
// node shapes the binder reads — internal names, modifiers, members,
// decorators — without implementing a lexer or parser: nodes are built by
// hand (via Builder) or fed in from a hypothetical front end that is not
// part of this repository.
package ast

import "tsbind/internal/source"

// DeclKind classifies a top-level or member declaration node.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	DeclNamespace
	DeclEnum
	DeclEnumValue
	DeclVariable // top-level "variable" -> Global entity (static fields are DeclField)
	DeclFunction // also used for methods
	DeclClass
	DeclInterface
	DeclField
	DeclTypeAlias
	DeclImport
	DeclExport
)

func (k DeclKind) String() string {
	switch k {
	case DeclNamespace:
		return "NAMESPACE"
	case DeclEnum:
		return "ENUM"
	case DeclEnumValue:
		return "ENUMVALUE"
	case DeclVariable:
		return "VARIABLE"
	case DeclFunction:
		return "FUNCTION"
	case DeclClass:
		return "CLASS"
	case DeclInterface:
		return "INTERFACE"
	case DeclField:
		return "FIELD"
	case DeclTypeAlias:
		return "TYPEDECLARATION"
	case DeclImport:
		return "IMPORT"
	case DeclExport:
		return "EXPORT"
	default:
		return "INVALID"
	}
}

// ExprKind classifies the small set of expression nodes the resolver reads.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIdentifier
	ExprPropertyAccess
	ExprThis
	ExprNew
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdentifier:
		return "IDENTIFIER"
	case ExprPropertyAccess:
		return "PROPERTYACCESS"
	case ExprThis:
		return "THIS"
	case ExprNew:
		return "NEW"
	default:
		return "INVALID"
	}
}

// Modifier is a bitmask of the modifier keywords spec.md §6 lists as a
// consumed interface.
type Modifier uint16

const (
	ModImport Modifier = 1 << iota
	ModExport
	ModDeclare
	ModConst
	ModStatic
	ModGet
	ModSet
	ModReadonly
	ModPrivate
	ModProtected
	ModPublic
	ModAbstract
)

func (m Modifier) Has(f Modifier) bool { return m&f != 0 }

// Decorator is an identifier-only decorator with at most one argument, e.g.
// `@global` or `@global("alias")`.
type Decorator struct {
	Name     string
	Argument string
	HasArg   bool
	Range    source.Range
}

// IsGlobal reports whether this is the `@global` decorator recognized by the
// binder's registration protocol (spec.md §4.1 step 3).
func (d Decorator) IsGlobal() bool { return d.Name == "global" }
