package types

import (
	"fmt"
	"sync"
)

// Target selects the pointer width of the runtime the program compiles for.
// It only affects isize/usize and the size of KindClass object references.
type Target uint8

const (
	TargetWasm32 Target = iota
	TargetWasm64
)

func (t Target) PointerWidth() uint32 {
	if t == TargetWasm64 {
		return 8
	}
	return 4
}

func (t Target) String() string {
	if t == TargetWasm64 {
		return "wasm64"
	}
	return "wasm32"
}

// Registry maps qualified type names to concrete Type values. Keys are
// either file-local ("<sourcePath>/<name>") or program-global bare names;
// the registry itself is agnostic to which — callers form the key.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Type
}

// NewRegistry builds a registry pre-seeded with every primitive the spec
// names: the fixed-width integers, bool, void, floats, the target-dependent
// isize/usize aliases, and the number/boolean aliases.
func NewRegistry(target Target) *Registry {
	r := &Registry{byName: make(map[string]*Type, 32)}
	prim := func(kind Kind, name string) *Type {
		t := &Type{Kind: kind, Name: name, SizeBytes: numericSize(kind)}
		r.byName[name] = t
		return t
	}
	prim(KindI8, "i8")
	prim(KindI16, "i16")
	i32 := prim(KindI32, "i32")
	i64 := prim(KindI64, "i64")
	prim(KindU8, "u8")
	prim(KindU16, "u16")
	u32 := prim(KindU32, "u32")
	u64 := prim(KindU64, "u64")
	prim(KindBool, "bool")
	prim(KindVoid, "void")
	f32 := prim(KindF32, "f32")
	f64 := prim(KindF64, "f64")

	if target == TargetWasm64 {
		r.byName["isize"] = i64
		r.byName["usize"] = u64
	} else {
		r.byName["isize"] = i32
		r.byName["usize"] = u32
	}

	r.byName["number"] = f64
	r.byName["boolean"] = r.byName["bool"]
	_ = f32

	return r
}

// Get looks up a type by exact key, returning (nil, false) on a miss.
func (r *Registry) Get(key string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[key]
	return t, ok
}

// Set installs (or overwrites) a type under key. Used by class
// monomorphization to register resolved class/interface object types; safe to call
// concurrently from a parallel monomorphization pass.
func (r *Registry) Set(key string, t *Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName[key] = t
}

// Has reports whether key is already registered — used for the
// type/type-alias duplicate check (spec.md §3 invariants).
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[key]
	return ok
}

// MakeClassType builds the pointer-width object Type for a resolved
// class/interface instance, keyed by its internal name (which already
// encodes any generic instance suffix).
func MakeClassType(target Target, internalName string, classRef any) *Type {
	return &Type{
		Kind:      KindClass,
		Name:      internalName,
		SizeBytes: target.PointerWidth(),
		ClassRef:  classRef,
	}
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry{%d types}", len(r.byName))
}
