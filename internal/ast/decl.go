package ast

import "tsbind/internal/source"

// DeclBase carries the attributes every declaration node shares.
type DeclBase struct {
	Kind DeclKind
	// Name is the declaration's simple (unqualified) name.
	Name string
	// InternalName is the mangled, path-qualified name the (external)
	// parser is responsible for precomputing (spec.md §1).
	InternalName string
	Modifiers    Modifier
	Decorators   []Decorator
	Range        source.Range
}

func (d *DeclBase) IsExported() bool { return d.Modifiers.Has(ModExport) }
func (d *DeclBase) IsImported() bool { return d.Modifiers.Has(ModImport) }
func (d *DeclBase) IsDeclared() bool { return d.Modifiers.Has(ModDeclare) }
func (d *DeclBase) IsConst() bool    { return d.Modifiers.Has(ModConst) }

// GlobalDecorator returns the `@global` decorator attached to the
// declaration, if any.
func (d *DeclBase) GlobalDecorator() (Decorator, bool) {
	for _, dec := range d.Decorators {
		if dec.IsGlobal() {
			return dec, true
		}
	}
	return Decorator{}, false
}

// Param is a single function/method parameter.
type Param struct {
	Name           string
	Type           *TypeNode // nil means "unannotated" (fails resolution per spec.md §4.4)
	HasInitializer bool
	Range          source.Range
}

// TypeParam is a single generic type parameter name.
type TypeParam struct {
	Name  string
	Range source.Range
}

// NamespaceDecl models `namespace N { ... }`.
type NamespaceDecl struct {
	DeclBase
	Members []Decl
}

// EnumValueDecl models a single member of an enum.
type EnumValueDecl struct {
	DeclBase
	// Value is the explicit constant, or nil to auto-increment from the
	// previous member (starting at 0).
	Value *int32
}

// EnumDecl models `enum E { ... }`.
type EnumDecl struct {
	DeclBase
	Values []*EnumValueDecl
}

// VariableDecl models a top-level `let`/`const`, always bound to a Global
// entity.
type VariableDecl struct {
	DeclBase
	Type           *TypeNode // optional until resolved
	HasInitializer bool
	ConstantInt    *int64
	ConstantFloat  *float64
}

// FunctionDecl models a top-level function or, inside a ClassDecl/
// InterfaceDecl, a method (static or instance, possibly an accessor).
type FunctionDecl struct {
	DeclBase
	TypeParameters []TypeParam
	Parameters     []Param
	ReturnType     *TypeNode // nil means "unannotated"
	HasBody        bool
	Static         bool
	// Accessor is ModGet, ModSet, or 0 for a plain method.
	Accessor Modifier
}

// IsGeneric reports whether the declaration carries type parameters.
func (f *FunctionDecl) IsGeneric() bool { return len(f.TypeParameters) > 0 }

// FieldDecl models a field inside a class/interface, instance or static.
// A static field binds to a Global entity instead of a FieldPrototype
// (spec.md §3), so it carries the same optional constant-folding info a
// top-level VariableDecl does.
type FieldDecl struct {
	DeclBase
	Type           *TypeNode
	Static         bool
	HasInitializer bool
	ConstantInt    *int64
	ConstantFloat  *float64
}

// ClassMember is any declaration that can appear inside a class or
// interface body: *FieldDecl or *FunctionDecl (method/accessor, static or
// instance).
type ClassMember any

// ClassDecl models `class C<T> extends Base { ... }`.
type ClassDecl struct {
	DeclBase
	TypeParameters []TypeParam
	BaseType       *TypeNode // nil if no explicit base class
	Members        []ClassMember
}

// IsGeneric reports whether the declaration carries type parameters.
func (c *ClassDecl) IsGeneric() bool { return len(c.TypeParameters) > 0 }

// InterfaceDecl mirrors ClassDecl for `interface I { ... }`.
type InterfaceDecl struct {
	DeclBase
	TypeParameters []TypeParam
	BaseType       *TypeNode
	Members        []ClassMember
}

func (i *InterfaceDecl) IsGeneric() bool { return len(i.TypeParameters) > 0 }

// ClassLike extracts the fields ClassDecl and InterfaceDecl share, since the
// binder treats the two identically apart from the entity Kind it produces.
// It panics for any other concrete type.
func ClassLike(d any) (base *DeclBase, typeParams []TypeParam, baseType *TypeNode, members []ClassMember) {
	switch v := d.(type) {
	case *ClassDecl:
		return &v.DeclBase, v.TypeParameters, v.BaseType, v.Members
	case *InterfaceDecl:
		return &v.DeclBase, v.TypeParameters, v.BaseType, v.Members
	default:
		panic("ast.ClassLike: expected *ClassDecl or *InterfaceDecl")
	}
}

// TypeAliasDecl models `type Alias = SomeType;`.
type TypeAliasDecl struct {
	DeclBase
	Aliased *TypeNode
}

// ImportSpecifier names one imported binding: `id as local`.
type ImportSpecifier struct {
	Identifier string // external identifier exported by the module
	Local      string // local binding name (== Identifier when no `as`)
	Range      source.Range
}

// ImportDecl models `import { a as b, c } from "mod";` or
// `import * as ns from "mod";`.
type ImportDecl struct {
	DeclBase
	ModulePath         string // as written, e.g. "mod"
	ModuleInternalPath string // resolved internal path of the target module
	Specifiers         []ImportSpecifier
	NamespaceImport    bool // `import * as ns from "mod"` — unsupported (spec.md §4.1)
	NamespaceAlias     string
}

// ExportSpecifier names one exported binding: `id as name`.
type ExportSpecifier struct {
	Identifier         string // local identifier being exported (or, for a
	// re-export, the identifier as named in the source module)
	ExternalIdentifier string // the name external importers see
	Range              source.Range
}

// ExportDecl models `export { id as name };` and
// `export { id as name } from "mod";`.
type ExportDecl struct {
	DeclBase
	FromModule         bool
	ModulePath         string
	ModuleInternalPath string
	Specifiers         []ExportSpecifier
}

// Decl is the union of every top-level declaration node kind. Concrete
// values are *NamespaceDecl, *EnumDecl, *VariableDecl, *FunctionDecl,
// *ClassDecl, *InterfaceDecl, *TypeAliasDecl, *ImportDecl, *ExportDecl.
type Decl any

// Base extracts the shared DeclBase from any concrete Decl/ClassMember
// value. It panics on an unrecognized concrete type, matching spec.md §7's
// stance that an unexpected AST node reaching binder dispatch is an internal
// contract violation, not user error.
func Base(d any) *DeclBase {
	switch v := d.(type) {
	case *NamespaceDecl:
		return &v.DeclBase
	case *EnumDecl:
		return &v.DeclBase
	case *EnumValueDecl:
		return &v.DeclBase
	case *VariableDecl:
		return &v.DeclBase
	case *FunctionDecl:
		return &v.DeclBase
	case *ClassDecl:
		return &v.DeclBase
	case *InterfaceDecl:
		return &v.DeclBase
	case *FieldDecl:
		return &v.DeclBase
	case *TypeAliasDecl:
		return &v.DeclBase
	case *ImportDecl:
		return &v.DeclBase
	case *ExportDecl:
		return &v.DeclBase
	default:
		panic("ast.Base: unrecognized declaration node")
	}
}
