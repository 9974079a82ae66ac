package element

import (
	"sync"

	"tsbind/internal/ast"
	"tsbind/internal/types"
)

// ClassPrototype represents a class *or interface* declaration before any
// type arguments are bound. Base.Kind distinguishes the two
// (KindClassPrototype vs KindInterfacePrototype); spec.md §3 describes
// InterfacePrototype as "a specialization of ClassPrototype ... with the
// more specific types", which here means the same Go type reused under a
// different Kind rather than a parallel struct hierarchy Go has no clean way
// to express.
//
// Base.Members holds static members (also duplicated into Program.elements
// per spec.md §4.1); InstanceMembers holds instance fields and methods,
// resolved only when the class is monomorphized.
type ClassPrototype struct {
	Base
	// Decl is *ast.ClassDecl or *ast.InterfaceDecl; use ast.ClassLike to
	// read the fields they share.
	Decl any
	// File is the source the declaration appeared in, needed to resolve
	// file-scoped type names in the base type and member declarations.
	File            *ast.File
	InstanceMembers map[string]Element

	// mu guards instances: ResolveAll reaches a non-generic prototype both
	// as its own worklist item and, concurrently, through any other
	// prototype's field/parameter type that names it, so the check-then-
	// insert on first monomorphization must be atomic across goroutines.
	mu        sync.Mutex
	instances map[string]*Class
}


// IsGeneric reports whether the declaration carries type parameters.
func (p *ClassPrototype) IsGeneric() bool { return p.Flags.Has(FlagGeneric) }

// IsInterface reports whether this prototype was declared `interface`
// rather than `class`.
func (p *ClassPrototype) IsInterface() bool { return p.Kind == KindInterfacePrototype }

// Instances exposes the cached concrete instances for inspection/testing.
func (p *ClassPrototype) Instances() map[string]*Class { return p.instances }

func (p *ClassPrototype) instanceMember(name string, child Element) {
	if p.InstanceMembers == nil {
		p.InstanceMembers = make(map[string]Element)
	}
	p.InstanceMembers[name] = child
}

// Class is a concrete, monomorphized class or interface instance;
// Base.Kind is KindClass or KindInterface (see ClassPrototype's doc comment
// for why this is one Go type rather than two).
type Class struct {
	Base
	Prototype     *ClassPrototype
	TypeArguments []*types.Type
	// ObjectType is this instance's pointer-width object Type, registered
	// into the program's type registry under InternalName.
	ObjectType *types.Type
	// BaseClass is the optional resolved base class/interface.
	BaseClass               *Class
	ContextualTypeArguments map[string]*types.Type
}


// IsInterface reports whether this instance specializes an interface
// prototype rather than a class prototype.
func (c *Class) IsInterface() bool { return c.Kind == KindInterface }
