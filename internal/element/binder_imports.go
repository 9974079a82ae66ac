package element

import (
	"tsbind/internal/ast"
	"tsbind/internal/diag"
	"tsbind/internal/ident"
)

// bindImport queues one QueuedImport per named specifier; resolution
// happens after every source has been bound (spec.md §4.1), since the
// referenced export may be declared later in the file list. Namespace-form
// imports (`import * as ns from "mod"`) have no single referenced export to
// queue against and are rejected outright: the imported names are only
// known once the target module is fully bound, and re-exposing them under a
// synthetic namespace alias is out of scope for this binder.
func (b *binder) bindImport(f *ast.File, d *ast.ImportDecl) {
	if d.NamespaceImport {
		diag.ReportError(b.prog.Reporter, diag.SemaOperationNotSupported, d.Range,
			"Operation not supported.").Emit()
		return
	}
	for _, spec := range d.Specifiers {
		b.prog.queuedImports = append(b.prog.queuedImports, &QueuedImport{
			LocalInternalName: ident.FileScoped(f.Path, spec.Local),
			ReferencedName:    ident.FileScoped(d.ModuleInternalPath, spec.Identifier),
			ModuleDisplay:     d.ModulePath,
			MemberDisplay:     spec.Identifier,
			Range:             spec.Range,
		})
	}
}

// bindExport queues one QueuedExport per named specifier, covering both a
// local named export (`export { a as b };`) and a re-export
// (`export { a as b } from "mod";`). Resolution is deferred for the same
// reason imports are: the referenced binding, or the export it re-exports,
// may not exist yet at the point this statement is bound.
func (b *binder) bindExport(f *ast.File, d *ast.ExportDecl) {
	for _, spec := range d.Specifiers {
		var referenced, moduleDisplay string
		if d.FromModule {
			referenced = ident.FileScoped(d.ModuleInternalPath, spec.Identifier)
			moduleDisplay = d.ModulePath
		} else {
			referenced = ident.FileScoped(f.Path, spec.Identifier)
			moduleDisplay = f.Path
		}
		b.prog.queuedExports = append(b.prog.queuedExports, &QueuedExport{
			ExternalName:   ident.FileScoped(f.Path, spec.ExternalIdentifier),
			ReferencedName: referenced,
			IsReExport:     d.FromModule,
			ModuleDisplay:  moduleDisplay,
			MemberDisplay:  spec.Identifier,
			Range:          spec.Range,
		})
	}
}

// resolveQueuedImportsExports drains both queues to a fixed point: each pass
// resolves any export whose referenced name has become available in
// elements or exports, and any import whose referenced name has become
// available in exports. A queued export's referenced name becomes available
// either directly (an ordinary declaration in elements), transitively
// (another queued import having just aliased it into elements), or as a
// re-export of a re-export (another queued export having just landed it in
// exports) — checking exports as well as elements is what lets a re-export
// chain of arbitrary length resolve, one link per pass, regardless of
// whether each link is a re-export of a declaration or of another
// re-export. Iterating jointly avoids the stale-lookup trap of resolving
// exports once and then imports once in a single fixed pass, which fails
// whenever an export re-exports a name that only import resolution
// supplies.
//
// The loop always terminates: each pass either resolves at least one queued
// entry or leaves both sets unchanged, so it runs at most
// len(queuedExports)+len(queuedImports)+1 passes before giving up, at which
// point any entry still unresolved (including a genuine cycle) is reported:
// an unsatisfiable re-export names a module that never produced the member
// (Module_0_has_no_exported_member_1), while an unsatisfiable local export
// names a binding that was never declared at all (Cannot_find_name_0) —
// an import always names a module, so it only ever gets the former.
func (b *binder) resolveQueuedImportsExports() {
	p := b.prog
	exportDone := make(map[*QueuedExport]bool, len(p.queuedExports))
	importDone := make(map[*QueuedImport]bool, len(p.queuedImports))

	for progress := true; progress; {
		progress = false
		for _, qe := range p.queuedExports {
			if exportDone[qe] {
				continue
			}
			elem, ok := p.Elements[qe.ReferencedName]
			if !ok {
				elem, ok = p.Exports[qe.ReferencedName]
			}
			if !ok {
				continue
			}
			if _, exists := p.Exports[qe.ExternalName]; exists {
				b.reportExportConflict(qe.Range, qe.ExternalName)
			} else {
				p.Exports[qe.ExternalName] = elem
			}
			exportDone[qe] = true
			progress = true
		}
		for _, qi := range p.queuedImports {
			if importDone[qi] {
				continue
			}
			elem, ok := p.Exports[qi.ReferencedName]
			if !ok {
				continue
			}
			p.Elements[qi.LocalInternalName] = elem
			importDone[qi] = true
			progress = true
		}
	}

	for _, qe := range p.queuedExports {
		if exportDone[qe] {
			continue
		}
		if qe.IsReExport {
			b.reportModuleHasNoExportedMember(qe.Range, qe.ModuleDisplay, qe.MemberDisplay)
		} else {
			reportCannotFindName(p, qe.Range, qe.MemberDisplay)
		}
	}
	for _, qi := range p.queuedImports {
		if !importDone[qi] {
			b.reportModuleHasNoExportedMember(qi.Range, qi.ModuleDisplay, qi.MemberDisplay)
		}
	}
}
