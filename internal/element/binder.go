package element

import (
	"fmt"

	"tsbind/internal/ast"
	"tsbind/internal/diag"
	"tsbind/internal/source"
)

// binder walks parsed sources and populates a Program's elements, exports,
// and queued import/export records (spec.md §4.1). It holds no state beyond
// the Program it writes to; a fresh binder is cheap and Bind never reuses
// one across calls.
type binder struct {
	prog *Program
}

// Bind runs the registration pass over every source already attached to p
// (via Program.AddSource), then resolves the queued import/export records
// created along the way. Type and expression resolution (spec.md §4.2/§4.3)
// and monomorphization (§4.4) are driven separately by the caller once
// binding has finished.
func Bind(p *Program) {
	b := &binder{prog: p}
	for _, f := range p.Sources {
		for _, item := range f.Items {
			b.bindTopLevel(f, item, nil)
		}
	}
	b.resolveQueuedImportsExports()
}

func (b *binder) bindTopLevel(f *ast.File, d ast.Decl, ns Element) {
	switch v := d.(type) {
	case *ast.NamespaceDecl:
		b.bindNamespace(f, v, ns)
	case *ast.EnumDecl:
		b.bindEnum(f, v, ns)
	case *ast.VariableDecl:
		b.bindGlobal(f, v, ns)
	case *ast.FunctionDecl:
		b.bindFunctionPrototype(f, v, ns, nil)
	case *ast.ClassDecl:
		b.bindClassLike(f, &v.DeclBase, v.TypeParameters, v.Members, ns, KindClassPrototype, v)
	case *ast.InterfaceDecl:
		b.bindClassLike(f, &v.DeclBase, v.TypeParameters, v.Members, ns, KindInterfacePrototype, v)
	case *ast.TypeAliasDecl:
		b.bindTypeAlias(v)
	case *ast.ImportDecl:
		b.bindImport(f, v)
	case *ast.ExportDecl:
		b.bindExport(f, v)
	default:
		panic(fmt.Sprintf("element: unexpected declaration node %T", d))
	}
}

// register applies the shared registration protocol every top-level and
// static-member declaration handler goes through (spec.md §4.1):
//
//  1. duplicate check against Program.elements, keyed by the entity's own
//     (already-computed) internal name;
//  2. unconditional insertion into Program.elements;
//  3. promotion into the flat global namespace under its bare name when the
//     declaration carries an `@global` decorator;
//  4. placement into the enclosing container's members map when ns is
//     non-nil, or into Program.exports when the declaration is exported and
//     has no enclosing container.
//
// It reports diagnostics itself and returns false when the entity was
// dropped as a duplicate.
func (b *binder) register(base *ast.DeclBase, ns Element, elem Element) bool {
	p := b.prog
	eb := elem.Base()
	internalName := eb.InternalName

	if _, exists := p.Elements[internalName]; exists {
		b.reportDuplicate(base.Range, internalName)
		return false
	}
	eb.Namespace = ns
	p.Elements[internalName] = elem

	if dec, ok := base.GlobalDecorator(); ok {
		alias := base.Name
		if dec.HasArg && dec.Argument != "" {
			alias = dec.Argument
		}
		if _, exists := p.Elements[alias]; exists {
			b.reportDuplicate(base.Range, alias)
		} else {
			p.Elements[alias] = elem
			eb.Flags |= FlagGlobal
		}
	}

	switch {
	case ns != nil:
		nb := ns.Base()
		if _, exists := nb.Members[base.Name]; exists {
			b.reportDuplicate(base.Range, base.Name)
		} else {
			nb.member(base.Name, elem)
		}
	case base.IsExported():
		if _, exists := p.Exports[internalName]; exists {
			b.reportExportConflict(base.Range, internalName)
		} else {
			p.Exports[internalName] = elem
		}
	}
	return true
}

// registerInstanceMember places an instance field or method into a class
// prototype's InstanceMembers map. Instance members never enter
// Program.elements: they only become addressable once a concrete Class
// instance resolves them (spec.md §4.1, §4.4).
func (b *binder) registerInstanceMember(base *ast.DeclBase, cp *ClassPrototype, elem Element) bool {
	if _, exists := cp.InstanceMembers[base.Name]; exists {
		b.reportDuplicate(base.Range, base.Name)
		return false
	}
	elem.Base().Namespace = cp
	cp.instanceMember(base.Name, elem)
	return true
}

func (b *binder) reportDuplicate(r source.Range, name string) {
	diag.ReportError(b.prog.Reporter, diag.SemaDuplicateIdentifier, r,
		fmt.Sprintf("Duplicate identifier '%s'.", name)).Emit()
}

func (b *binder) reportExportConflict(r source.Range, name string) {
	diag.ReportError(b.prog.Reporter, diag.SemaExportConflict, r,
		fmt.Sprintf("Export declaration conflicts with exported declaration of '%s'.", name)).Emit()
}

func (b *binder) reportModuleHasNoExportedMember(r source.Range, moduleDisplay, memberDisplay string) {
	diag.ReportError(b.prog.Reporter, diag.SemaModuleHasNoExportedMember, r,
		fmt.Sprintf("Module '%s' has no exported member '%s'.", moduleDisplay, memberDisplay)).Emit()
}

// flagsFromModifiers maps the AST's surface modifier bitmask onto the
// entity-level Flags bitmap. Static/Get/Set/Abstract have no direct Flags
// counterpart; they steer which concrete entity a declaration becomes
// instead (handled by the binder's dispatch, not by this table).
func flagsFromModifiers(m ast.Modifier) Flags {
	var f Flags
	if m.Has(ast.ModImport) {
		f |= FlagImported
	}
	if m.Has(ast.ModExport) {
		f |= FlagExported
	}
	if m.Has(ast.ModDeclare) {
		f |= FlagDeclared
	}
	if m.Has(ast.ModConst) || m.Has(ast.ModReadonly) {
		f |= FlagConstant
	}
	if m.Has(ast.ModReadonly) {
		f |= FlagReadonly
	}
	if m.Has(ast.ModPublic) {
		f |= FlagPublic
	}
	if m.Has(ast.ModProtected) {
		f |= FlagProtected
	}
	if m.Has(ast.ModPrivate) {
		f |= FlagPrivate
	}
	return f
}

func (b *binder) bindNamespace(f *ast.File, d *ast.NamespaceDecl, ns Element) {
	nsElem := &Namespace{
		Base: Base{
			Kind: KindNamespace, Program: b.prog,
			SimpleName: d.Name, InternalName: d.InternalName,
			Flags: flagsFromModifiers(d.Modifiers), Range: d.Range,
		},
		Decl: d,
	}
	if !b.register(&d.DeclBase, ns, nsElem) {
		return
	}
	for _, member := range d.Members {
		b.bindTopLevel(f, member, nsElem)
	}
}

func (b *binder) bindEnum(f *ast.File, d *ast.EnumDecl, ns Element) {
	e := &Enum{
		Base: Base{
			Kind: KindEnum, Program: b.prog,
			SimpleName: d.Name, InternalName: d.InternalName,
			Flags: flagsFromModifiers(d.Modifiers), Range: d.Range,
		},
		Decl: d,
	}
	if !b.register(&d.DeclBase, ns, e) {
		return
	}
	var next int32
	for _, v := range d.Values {
		value := next
		if v.Value != nil {
			value = *v.Value
		}
		ev := &EnumValue{
			Base: Base{
				Kind: KindEnumValue, Program: b.prog,
				SimpleName: v.Name, InternalName: v.InternalName,
				Flags: flagsFromModifiers(v.Modifiers) | FlagConstant | FlagConstantValue,
				Range: v.Range,
			},
			Decl:          v,
			Enum:          e,
			ConstantValue: value,
		}
		b.register(&v.DeclBase, e, ev)
		next = value + 1
	}
}

func (b *binder) bindGlobal(f *ast.File, d *ast.VariableDecl, ns Element) {
	flags := flagsFromModifiers(d.Modifiers)
	if d.ConstantInt != nil || d.ConstantFloat != nil {
		flags |= FlagConstantValue
	}
	g := &Global{
		Base: Base{
			Kind: KindGlobal, Program: b.prog,
			SimpleName: d.Name, InternalName: d.InternalName,
			Flags: flags, Range: d.Range,
		},
		Decl:          d,
		File:          f,
		ConstantInt:   d.ConstantInt,
		ConstantFloat: d.ConstantFloat,
	}
	b.register(&d.DeclBase, ns, g)
}

// bindFunctionPrototype binds a free function or a static method. owner is
// nil for a free function.
func (b *binder) bindFunctionPrototype(f *ast.File, d *ast.FunctionDecl, ns Element, owner *ClassPrototype) *FunctionPrototype {
	flags := flagsFromModifiers(d.Modifiers)
	if d.IsGeneric() {
		flags |= FlagGeneric
	}
	fp := &FunctionPrototype{
		Base: Base{
			Kind: KindFunctionPrototype, Program: b.prog,
			SimpleName: d.Name, InternalName: d.InternalName,
			Flags: flags, Range: d.Range,
		},
		Decl:      d,
		Class:     owner,
		File:      f,
		instances: make(map[string]*Function),
	}
	if !b.register(&d.DeclBase, ns, fp) {
		return nil
	}
	return fp
}

// bindTypeAlias records a type alias in the program's flat alias table.
// Aliases have no runtime entity and are substituted away during type
// resolution (spec.md §4.2), so they never touch Program.elements. A name
// already occupied in either the type registry (a primitive or a
// monomorphized class) or the alias table itself is a duplicate: nothing
// stops `type i32 = f64;` from colliding with the registry's seeded
// primitive, and only checking TypeAliases would let it through.
func (b *binder) bindTypeAlias(d *ast.TypeAliasDecl) {
	if _, exists := b.prog.TypeAliases[d.InternalName]; exists {
		b.reportDuplicate(d.Range, d.InternalName)
		return
	}
	if b.prog.Types.Has(d.InternalName) {
		b.reportDuplicate(d.Range, d.InternalName)
		return
	}
	b.prog.TypeAliases[d.InternalName] = d.Aliased
}
