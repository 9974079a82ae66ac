package element

import (
	"tsbind/internal/ast"
	"tsbind/internal/diag"
	"tsbind/internal/source"
	"tsbind/internal/types"
)

// QueuedExport is a deferred export binding created when the referenced
// name is not yet available in Elements/Exports (spec.md §4.1).
type QueuedExport struct {
	ExternalName   string
	ReferencedName string
	IsReExport     bool
	ModuleDisplay  string
	MemberDisplay  string
	Range          source.Range
}

// QueuedImport is a deferred import binding created when the referenced
// export is not yet available (spec.md §4.1).
type QueuedImport struct {
	LocalInternalName string
	ReferencedName    string
	ModuleDisplay     string
	MemberDisplay     string
	Range             source.Range
}

// Program is the root object the binder populates and the resolver reads
// from (spec.md §3).
type Program struct {
	Sources     []*ast.File
	Types       *types.Registry
	TypeAliases map[string]*ast.TypeNode
	Elements    map[string]Element
	Exports     map[string]Element
	Target      types.Target

	Bag      *diag.Bag
	Reporter diag.Reporter

	diagnosticsOffset int

	queuedExports []*QueuedExport
	queuedImports []*QueuedImport
}

// Options configures NewProgram.
type Options struct {
	Target types.Target
	Bag    *diag.Bag
	// InitBuiltins, when non-nil, is invoked after primitives are seeded to
	// register runtime built-in globals/types (spec.md §4.1: "an external
	// initializer populates primitive globals and types into the
	// program"). Code generation and the actual built-in catalogue are out
	// of scope for this component, so tests/CLI supply their own.
	InitBuiltins func(*Program)
}

// NewProgram builds a Program pre-seeded with the primitive type table and
// runs the caller-supplied built-in initializer (spec.md §4.1 "initialize").
func NewProgram(opts Options) *Program {
	bag := opts.Bag
	if bag == nil {
		bag = diag.NewBag(16)
	}
	p := &Program{
		Sources:           nil,
		Types:             types.NewRegistry(opts.Target),
		TypeAliases:       make(map[string]*ast.TypeNode),
		Elements:          make(map[string]Element),
		Exports:           make(map[string]Element),
		Target:            opts.Target,
		Bag:               bag,
		Reporter:          diag.BagReporter{Bag: bag},
		diagnosticsOffset: bag.Len(),
	}
	if opts.InitBuiltins != nil {
		opts.InitBuiltins(p)
	}
	return p
}

// AddSource appends a parsed file to the program without binding it. Binding
// happens in a separate pass (element.Bind) so callers can add every source
// before running cross-file resolution.
func (p *Program) AddSource(f *ast.File) { p.Sources = append(p.Sources, f) }

// NewDiagnostics returns diagnostics accumulated since the program (or the
// last call to ResetDiagnosticsOffset) was created — the "cursor into the
// shared diagnostic list" spec.md §3 describes.
func (p *Program) NewDiagnostics() []diag.Diagnostic {
	items := p.Bag.Items()
	if p.diagnosticsOffset >= len(items) {
		return nil
	}
	return items[p.diagnosticsOffset:]
}

// ResetDiagnosticsOffset advances the cursor to the bag's current length.
func (p *Program) ResetDiagnosticsOffset() { p.diagnosticsOffset = p.Bag.Len() }
