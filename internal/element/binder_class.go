package element

import (
	"tsbind/internal/ast"
	"tsbind/internal/ident"
)

// bindClassLike binds a class or interface declaration. kind is
// KindClassPrototype or KindInterfacePrototype; declNode is the concrete
// *ast.ClassDecl/*ast.InterfaceDecl, stored on ClassPrototype.Decl for later
// retrieval via ast.ClassLike.
func (b *binder) bindClassLike(f *ast.File, base *ast.DeclBase, typeParams []ast.TypeParam, members []ast.ClassMember, ns Element, kind Kind, declNode any) *ClassPrototype {
	flags := flagsFromModifiers(base.Modifiers)
	if len(typeParams) > 0 {
		flags |= FlagGeneric
	}
	cp := &ClassPrototype{
		Base: Base{
			Kind: kind, Program: b.prog,
			SimpleName: base.Name, InternalName: base.InternalName,
			Flags: flags, Range: base.Range,
		},
		Decl:      declNode,
		File:      f,
		instances: make(map[string]*Class),
	}
	if !b.register(base, ns, cp) {
		return nil
	}
	for _, m := range members {
		b.bindClassMember(m, cp)
	}
	return cp
}

func (b *binder) bindClassMember(m ast.ClassMember, cp *ClassPrototype) {
	switch v := m.(type) {
	case *ast.FieldDecl:
		b.bindField(v, cp)
	case *ast.FunctionDecl:
		b.bindMethod(v, cp)
	default:
		panic("element: unexpected class member node")
	}
}

// bindField places a static field as a Global (in cp.Members and
// Program.elements) or an instance field as a FieldPrototype (only in
// cp.InstanceMembers), per spec.md §4.1's placement rules. Member internal
// names are computed here via the ident package rather than trusted from
// the AST: mangling a class member requires the owning prototype's already
// resolved internal name, which only the binder has in hand while walking.
func (b *binder) bindField(d *ast.FieldDecl, cp *ClassPrototype) {
	flags := flagsFromModifiers(d.Modifiers)
	if d.Static {
		if d.ConstantInt != nil || d.ConstantFloat != nil {
			flags |= FlagConstantValue
		}
		g := &Global{
			Base: Base{
				Kind: KindGlobal, Program: b.prog,
				SimpleName: d.Name, InternalName: ident.Static(cp.InternalName, d.Name),
				Flags: flags, Range: d.Range,
			},
			Decl:          d,
			File:          cp.File,
			ConstantInt:   d.ConstantInt,
			ConstantFloat: d.ConstantFloat,
		}
		b.register(&d.DeclBase, cp, g)
		return
	}
	fp := &FieldPrototype{
		Base: Base{
			Kind: KindFieldPrototype, Program: b.prog,
			SimpleName: d.Name, InternalName: ident.Instance(cp.InternalName, d.Name),
			Flags: flags, Range: d.Range,
		},
		Decl:  d,
		Class: cp,
	}
	b.registerInstanceMember(&d.DeclBase, cp, fp)
}

// bindMethod places a static method as a FunctionPrototype (in cp.Members
// and Program.elements) or an instance method as a FunctionPrototype (only
// in cp.InstanceMembers). Accessors (get/set) are collapsed into a shared
// Property instead.
func (b *binder) bindMethod(d *ast.FunctionDecl, cp *ClassPrototype) {
	if d.Accessor != 0 {
		b.bindAccessor(d, cp)
		return
	}
	flags := flagsFromModifiers(d.Modifiers)
	if d.IsGeneric() {
		flags |= FlagGeneric
	}
	if d.Static {
		fp := &FunctionPrototype{
			Base: Base{
				Kind: KindFunctionPrototype, Program: b.prog,
				SimpleName: d.Name, InternalName: ident.Static(cp.InternalName, d.Name),
				Flags: flags, Range: d.Range,
			},
			Decl:      d,
			Class:     cp,
			File:      cp.File,
			instances: make(map[string]*Function),
		}
		b.register(&d.DeclBase, cp, fp)
		return
	}
	fp := &FunctionPrototype{
		Base: Base{
			Kind: KindFunctionPrototype, Program: b.prog,
			SimpleName: d.Name, InternalName: ident.Instance(cp.InternalName, d.Name),
			Flags: flags, Range: d.Range,
		},
		Decl:      d,
		Class:     cp,
		File:      cp.File,
		instances: make(map[string]*Function),
	}
	b.registerInstanceMember(&d.DeclBase, cp, fp)
}

// bindAccessor resolves a get/set method to the shared Property entity its
// base name identifies, creating the Property on first sight of either
// half. The underlying implementation function keeps its own internal name
// (prefixed get:/set:) for code generation, but is never independently
// addressable by identifier resolution — only through the Property. A
// second getter (or second setter) under the same property name is a
// duplicate identifier, not a silent overwrite.
func (b *binder) bindAccessor(d *ast.FunctionDecl, cp *ClassPrototype) {
	implName := ident.Getter(d.Name)
	if d.Accessor == ast.ModSet {
		implName = ident.Setter(d.Name)
	}
	var propInternalName, implInternalName string
	if d.Static {
		propInternalName = ident.Static(cp.InternalName, d.Name)
		implInternalName = ident.Static(cp.InternalName, implName)
	} else {
		propInternalName = ident.Instance(cp.InternalName, d.Name)
		implInternalName = ident.Instance(cp.InternalName, implName)
	}

	prop := b.findOrCreateProperty(d, cp, propInternalName)
	if d.Accessor == ast.ModSet {
		if prop.SetterPrototype != nil {
			b.reportDuplicate(d.Range, implInternalName)
			return
		}
	} else if prop.GetterPrototype != nil {
		b.reportDuplicate(d.Range, implInternalName)
		return
	}

	impl := &FunctionPrototype{
		Base: Base{
			Kind: KindFunctionPrototype, Program: b.prog,
			SimpleName: implName, InternalName: implInternalName,
			Flags: flagsFromModifiers(d.Modifiers), Range: d.Range,
		},
		Decl:      d,
		Class:     cp,
		File:      cp.File,
		instances: make(map[string]*Function),
	}
	b.prog.Elements[implInternalName] = impl

	if d.Accessor == ast.ModSet {
		prop.SetterPrototype = impl
		prop.Flags |= FlagSetter
	} else {
		prop.GetterPrototype = impl
		prop.Flags |= FlagGetter
	}
}

func (b *binder) findOrCreateProperty(d *ast.FunctionDecl, cp *ClassPrototype, internalName string) *Property {
	var existing Element
	var ok bool
	if d.Static {
		existing, ok = cp.Members[d.Name]
	} else {
		existing, ok = cp.InstanceMembers[d.Name]
	}
	if ok {
		if prop, isProp := existing.(*Property); isProp {
			return prop
		}
		b.reportDuplicate(d.Range, internalName)
		return &Property{Base: Base{Kind: KindProperty, Program: b.prog}, Class: cp, StaticAccessor: d.Static}
	}

	prop := &Property{
		Base: Base{
			Kind: KindProperty, Program: b.prog,
			SimpleName: d.Name, InternalName: internalName,
			Namespace: cp, Range: d.Range,
		},
		Class:          cp,
		StaticAccessor: d.Static,
	}
	if d.Static {
		b.prog.Elements[internalName] = prop
		cp.member(d.Name, prop)
	} else {
		cp.instanceMember(d.Name, prop)
	}
	return prop
}
