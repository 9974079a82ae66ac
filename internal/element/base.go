package element

import "tsbind/internal/source"

// Element is the discriminated-union interface every concrete entity
// implements. Base() exposes the fields common to every variant; callers
// type-switch on Base().Kind (or on the concrete Go type) to reach
// kind-specific fields.
type Element interface {
	Entity() *Base
}

// Base holds the attributes spec.md §3 lists on the abstract Entity type.
type Base struct {
	Kind    Kind
	Program *Program
	// SimpleName is the entity's unqualified name.
	SimpleName string
	// InternalName is the deterministic, path-qualified key this entity is
	// (or will be) stored under in Program.elements.
	InternalName string
	Flags        Flags
	// Namespace is the enclosing entity (a *Namespace, or the owning
	// *ClassPrototype for a static member), nil for a top-level entity.
	Namespace Element
	// Members holds named children: enum values, namespace members, or a
	// class/interface prototype's static members. Lazily allocated on first
	// insertion; nil (not empty) means "no members yet".
	Members map[string]Element
	// Range is the source location of the declaration, used to build
	// diagnostic notes ("previous declaration here").
	Range source.Range
}

func (b *Base) Entity() *Base { return b }

// member stores child in b.Members under name, allocating the map on first
// use.
func (b *Base) member(name string, child Element) {
	if b.Members == nil {
		b.Members = make(map[string]Element)
	}
	b.Members[name] = child
}
