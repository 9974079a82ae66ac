// Package types models the small, closed set of concrete types the binder
// resolves TypeNodes to: numeric primitives, bool, void, and class/interface
// object types. There is no structural type algebra beyond this — the spec
// explicitly excludes subtype/assignability checking, so Type only needs to
// be a stable, comparable descriptor plus a human-readable name.
package types

// Kind enumerates the categories of concrete types the binder produces.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindU8
	KindU16
	KindU32
	KindU64
	KindBool
	KindF32
	KindF64
	KindVoid
	// KindClass is the pointer-sized "object" type of a resolved Class or
	// Interface instance. Width is the target's pointer width.
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindBool:
		return "bool"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindVoid:
		return "void"
	case KindClass:
		return "class"
	default:
		return "invalid"
	}
}

// Type is a concrete, resolved type. ClassRef is populated only when
// Kind == KindClass; it is declared as `any` here to avoid an import cycle
// with the element package (which owns Class/Interface entities and imports
// types for their computed Type). Callers type-assert it back to
// *element.Class, which represents both classes and interfaces.
type Type struct {
	Kind      Kind
	Name      string // canonical display/mangled name, e.g. "i32" or "Foo<i32>"
	SizeBytes uint32
	ClassRef  any
}

// IsNumeric reports whether the type is an integer or float primitive.
func (t Type) IsNumeric() bool {
	switch t.Kind {
	case KindI8, KindI16, KindI32, KindI64, KindU8, KindU16, KindU32, KindU64, KindF32, KindF64:
		return true
	default:
		return false
	}
}

func numericSize(kind Kind) uint32 {
	switch kind {
	case KindI8, KindU8:
		return 1
	case KindI16, KindU16:
		return 2
	case KindI32, KindU32, KindF32:
		return 4
	case KindI64, KindU64, KindF64:
		return 8
	case KindBool:
		return 1
	case KindVoid:
		return 0
	default:
		return 0
	}
}
