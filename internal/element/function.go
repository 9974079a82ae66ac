package element

import (
	"fmt"
	"sync"

	"tsbind/internal/ast"
	"tsbind/internal/types"
)

// FunctionParam is a resolved function parameter: a name, its concrete type,
// and whether it carries a default-value initializer.
type FunctionParam struct {
	Name           string
	Type           *types.Type
	HasInitializer bool
}

// FunctionPrototype represents a function/method *declaration* before any
// type arguments are bound (spec.md §3). Non-generic prototypes have a
// single cached instance keyed by the empty string.
type FunctionPrototype struct {
	Base
	Decl *ast.FunctionDecl
	// Class is the owning ClassPrototype for a static or instance method,
	// nil for a free function.
	Class *ClassPrototype
	// File is the source the declaration appeared in, needed to resolve
	// file-scoped type names in parameter/return types (spec.md §4.2).
	File *ast.File

	// mu guards instances for the same reason ClassPrototype.mu does: a
	// non-generic function can be reached both as its own ResolveAll
	// worklist item and, concurrently, as a callee/field type resolved by
	// another item.
	mu        sync.Mutex
	instances map[string]*Function
}


// IsGeneric reports whether the declaration carries type parameters.
func (p *FunctionPrototype) IsGeneric() bool { return p.Flags.Has(FlagGeneric) }

// Instances exposes the cached concrete instances for inspection/testing.
func (p *FunctionPrototype) Instances() map[string]*Function { return p.instances }

// Function is a concrete, monomorphized function instance.
type Function struct {
	Base
	Prototype     *FunctionPrototype
	TypeArguments []*types.Type
	Parameters    []FunctionParam
	ReturnType    *types.Type
	// InstanceMethodOf is the enclosing Class for an instance method, nil
	// for a static method or free function.
	InstanceMethodOf *Class
	Locals           map[string]*Local
	AdditionalLocals []*Local
	// ContextualTypeArguments maps a type-parameter name to its bound
	// concrete Type, inherited from an enclosing class and overwritten by
	// this function's own type parameters (spec.md §3 invariant).
	ContextualTypeArguments map[string]*types.Type

	pointerWidth uint32

	breakStack  []int
	nextBreakID int
	breakLabel  string // decimal string of the current break context, "" if none

	tempPools      map[types.Native][]*Local
	nextLocalIndex int
}


// newFunction allocates a Function skeleton and, when instanceMethodOf is
// non-nil, registers "this" at local index 0 (spec.md §4.5).
func newFunction(prog *Program, prototype *FunctionPrototype, internalName string, instanceMethodOf *Class) *Function {
	f := &Function{
		Base: Base{
			Kind:         KindFunction,
			Program:      prog,
			SimpleName:   prototype.SimpleName,
			InternalName: internalName,
			Flags:        prototype.Flags &^ FlagGeneric,
		},
		Prototype:               prototype,
		InstanceMethodOf:        instanceMethodOf,
		Locals:                  make(map[string]*Local),
		ContextualTypeArguments: make(map[string]*types.Type),
		tempPools:               make(map[types.Native][]*Local),
		pointerWidth:            prog.Target.PointerWidth(),
	}
	if instanceMethodOf != nil {
		f.nextLocalIndex = 1
		f.Locals["this"] = &Local{
			Base:  Base{Kind: KindLocal, Program: prog, SimpleName: "this", InternalName: "this"},
			Index: 0,
			Type:  instanceMethodOf.ObjectType,
		}
	}
	return f
}

// AddLocal registers a new local at the next free index. An empty name
// produces an anonymous name of the form "anonymous$<index>". Registering a
// second local under an already-used name is an internal invariant
// violation (spec.md §4.5) and panics.
func (f *Function) AddLocal(t *types.Type, name string) *Local {
	index := f.nextLocalIndex
	f.nextLocalIndex++
	if name == "" {
		name = fmt.Sprintf("anonymous$%d", index)
	} else if _, exists := f.Locals[name]; exists {
		panic(fmt.Sprintf("element: duplicate local registration for %q in %s", name, f.InternalName))
	}
	local := &Local{
		Base:  Base{Kind: KindLocal, Program: f.Program, SimpleName: name, InternalName: name},
		Index: index,
		Type:  t,
	}
	f.Locals[name] = local
	f.AdditionalLocals = append(f.AdditionalLocals, local)
	return local
}

// GetTempLocal pops a free local of t's native class, or allocates a fresh
// one when the corresponding free-list is empty.
func (f *Function) GetTempLocal(t *types.Type) *Local {
	native, ok := types.NativeOf(*t, f.pointerWidth)
	if !ok {
		panic(fmt.Sprintf("element: GetTempLocal: unsupported native type for %s", t.Name))
	}
	pool := f.tempPools[native]
	if n := len(pool); n > 0 {
		local := pool[n-1]
		f.tempPools[native] = pool[:n-1]
		return local
	}
	return f.AddLocal(t, "")
}

// FreeTempLocal returns local to its native class's free-list for reuse.
func (f *Function) FreeTempLocal(local *Local) {
	native, ok := types.NativeOf(*local.Type, f.pointerWidth)
	if !ok {
		panic(fmt.Sprintf("element: FreeTempLocal: unsupported native type for %s", local.Type.Name))
	}
	f.tempPools[native] = append(f.tempPools[native], local)
}

// GetAndFreeTempLocal returns a temp local for a value whose lifetime ends
// immediately: it peeks an existing free local without consuming it, or
// allocates a fresh one and immediately deposits it in the free-list.
func (f *Function) GetAndFreeTempLocal(t *types.Type) *Local {
	native, ok := types.NativeOf(*t, f.pointerWidth)
	if !ok {
		panic(fmt.Sprintf("element: GetAndFreeTempLocal: unsupported native type for %s", t.Name))
	}
	if pool := f.tempPools[native]; len(pool) > 0 {
		return pool[len(pool)-1]
	}
	local := f.AddLocal(t, "")
	f.tempPools[native] = append(f.tempPools[native], local)
	return local
}

// EnterBreakContext pushes a fresh, monotonically increasing break-context
// id and returns it as its decimal-string label.
func (f *Function) EnterBreakContext() string {
	f.nextBreakID++
	id := f.nextBreakID
	f.breakStack = append(f.breakStack, id)
	f.breakLabel = fmt.Sprintf("%d", id)
	return f.breakLabel
}

// LeaveBreakContext pops the current break context, restoring the enclosing
// one or clearing to "no context" when the stack becomes empty.
func (f *Function) LeaveBreakContext() {
	if len(f.breakStack) == 0 {
		return
	}
	f.breakStack = f.breakStack[:len(f.breakStack)-1]
	if len(f.breakStack) == 0 {
		f.breakLabel = ""
		return
	}
	f.breakLabel = fmt.Sprintf("%d", f.breakStack[len(f.breakStack)-1])
}

// BreakContext returns the current break-context label, or "" if none.
func (f *Function) BreakContext() string { return f.breakLabel }

// Finalize clears per-compile transient state after code generation. It
// panics if the break-context stack is not balanced, matching spec.md
// §4.5's "asserts the stack is empty" wording.
func (f *Function) Finalize() {
	if len(f.breakStack) != 0 {
		panic(fmt.Sprintf("element: Finalize: unbalanced break context stack in %s", f.InternalName))
	}
	f.tempPools = make(map[types.Native][]*Local)
}
