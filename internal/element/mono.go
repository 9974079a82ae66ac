package element

import (
	"fmt"
	"strings"

	"tsbind/internal/ast"
	"tsbind/internal/diag"
	"tsbind/internal/ident"
	"tsbind/internal/types"
)

// typeArgsKey canonicalizes a resolved type-argument list into the string
// an instance cache is keyed on (spec.md §4.4). Arguments are joined
// positionally, not sorted: <T,U> and <U,T> are different instantiations.
func typeArgsKey(args []*types.Type) string {
	if len(args) == 0 {
		return ""
	}
	names := make([]string, len(args))
	for i, t := range args {
		names[i] = t.Name
	}
	return strings.Join(names, ",")
}

// Resolve returns the concretization of p for typeArgs, building and
// caching it on first use (spec.md §4.4). contextual supplies type
// arguments inherited from an enclosing class; p's own type parameters are
// merged in on top, taking priority on a name collision. instanceMethodOf
// is the owning Class instance for an instance method, nil otherwise.
func (p *FunctionPrototype) Resolve(prog *Program, typeArgs []*types.Type, contextual map[string]*types.Type, instanceMethodOf *Class) *Function {
	if len(p.Decl.TypeParameters) != len(typeArgs) {
		diag.ReportError(prog.Reporter, diag.SemaExpectedTypeArguments, p.Decl.Range,
			fmt.Sprintf("Expected %d type arguments, but got %d.", len(p.Decl.TypeParameters), len(typeArgs))).Emit()
		return nil
	}
	key := typeArgsKey(typeArgs)
	p.mu.Lock()
	if existing, ok := p.instances[key]; ok {
		p.mu.Unlock()
		return existing
	}

	internalName := p.InternalName
	if key != "" {
		internalName = p.InternalName + "<" + key + ">"
	}
	fn := newFunction(prog, p, internalName, instanceMethodOf)
	fn.TypeArguments = typeArgs
	for k, v := range contextual {
		fn.ContextualTypeArguments[k] = v
	}
	for i, tp := range p.Decl.TypeParameters {
		fn.ContextualTypeArguments[tp.Name] = typeArgs[i]
	}
	p.instances[key] = fn
	p.mu.Unlock()

	scope := Scope{Program: prog, File: p.File, Function: fn, Namespace: p.Namespace, Contextual: fn.ContextualTypeArguments}
	for _, param := range p.Decl.Parameters {
		t := ResolveType(scope, param.Type)
		fn.Parameters = append(fn.Parameters, FunctionParam{Name: param.Name, Type: t, HasInitializer: param.HasInitializer})
		fn.AddLocal(t, param.Name)
	}
	fn.ReturnType = ResolveType(scope, p.Decl.ReturnType)
	return fn
}

// Resolve returns the concretization of p for typeArgs, building and
// caching it on first use. It registers the instance in p.instances before
// resolving its base class and members so a self-referential field type
// (`class Node { next: Node|null }`) hits the cache instead of recursing
// forever. The cache check-and-insert happens under p.mu so two goroutines
// racing to monomorphize the same prototype — one as ResolveAll's own
// worklist item for p, another resolving some other entity's field/return
// type that names p — can't both decide the key is missing and both insert,
// which is what corrupts the map. The lock is released again as soon as the
// slot is claimed, before resolving the base class and members, so the
// self-reference recursion above never tries to re-lock it.
func (p *ClassPrototype) Resolve(prog *Program, typeArgs []*types.Type, contextual map[string]*types.Type) *Class {
	_, typeParams, baseType, _ := ast.ClassLike(p.Decl)
	if len(typeParams) != len(typeArgs) {
		diag.ReportError(prog.Reporter, diag.SemaExpectedTypeArguments, p.Range,
			fmt.Sprintf("Expected %d type arguments, but got %d.", len(typeParams), len(typeArgs))).Emit()
		return nil
	}
	key := typeArgsKey(typeArgs)
	p.mu.Lock()
	if existing, ok := p.instances[key]; ok {
		p.mu.Unlock()
		return existing
	}

	internalName := p.InternalName
	if key != "" {
		internalName = p.InternalName + "<" + key + ">"
	}
	kind := KindClass
	if p.IsInterface() {
		kind = KindInterface
	}
	cls := &Class{
		Base: Base{
			Kind: kind, Program: prog,
			SimpleName: p.SimpleName, InternalName: internalName,
			Flags: p.Flags &^ FlagGeneric, Namespace: p.Namespace, Range: p.Range,
		},
		Prototype:               p,
		TypeArguments:           typeArgs,
		ContextualTypeArguments: make(map[string]*types.Type),
	}
	for k, v := range contextual {
		cls.ContextualTypeArguments[k] = v
	}
	for i, tp := range typeParams {
		cls.ContextualTypeArguments[tp.Name] = typeArgs[i]
	}
	p.instances[key] = cls
	p.mu.Unlock()
	cls.ObjectType = types.MakeClassType(prog.Target, internalName, cls)
	prog.Types.Set(internalName, cls.ObjectType)

	if baseType != nil {
		scope := Scope{Program: prog, File: p.File, Namespace: p, Contextual: cls.ContextualTypeArguments}
		if t := ResolveType(scope, baseType); t != nil {
			if base, ok := t.ClassRef.(*Class); ok {
				cls.BaseClass = base
			}
		}
	}
	resolveInstanceMembers(prog, cls, p)
	return cls
}

// resolveInstanceMembers concretizes every entry in cp.InstanceMembers into
// cls.Base().Members: fields get their declared type resolved, non-generic
// methods are eagerly monomorphized with zero type arguments, and generic
// methods and accessor Properties are shared as-is across every
// instantiation of cp rather than specialized per instance — a
// simplification documented in the design notes, since neither varies with
// the enclosing class's type arguments often enough in practice to justify
// per-instance duplication here.
func resolveInstanceMembers(prog *Program, cls *Class, cp *ClassPrototype) {
	scope := Scope{Program: prog, File: cp.File, Namespace: cls, Contextual: cls.ContextualTypeArguments}
	for name, proto := range cp.InstanceMembers {
		switch v := proto.(type) {
		case *FieldPrototype:
			t := ResolveType(scope, v.Decl.Type)
			field := &Field{
				Base: Base{
					Kind: KindField, Program: prog,
					SimpleName: v.SimpleName, InternalName: ident.Instance(cls.InternalName, v.SimpleName),
					Flags: v.Flags, Namespace: cls, Range: v.Range,
				},
				Prototype:     v,
				Type:          t,
				ConstantInt:   v.Decl.ConstantInt,
				ConstantFloat: v.Decl.ConstantFloat,
			}
			cls.member(name, field)
		case *FunctionPrototype:
			if v.IsGeneric() {
				cls.member(name, v)
				continue
			}
			if fn := v.Resolve(prog, nil, cls.ContextualTypeArguments, cls); fn != nil {
				cls.member(name, fn)
			}
		case *Property:
			cls.member(name, v)
		}
	}
}
