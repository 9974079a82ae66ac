package element

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tsbind/internal/ast"
)

// ResolveAll drives the resolver over every entity Bind produced: it fills
// in each Global's declared Type, eagerly monomorphizes every non-generic
// function and class prototype (their single instance is always needed, so
// there is no reason to wait for an on-demand trigger), and leaves generic
// prototypes for callers to resolve on demand via FunctionPrototype.Resolve
// / ClassPrototype.Resolve with the type arguments a use site supplies.
//
// Work items run concurrently up to GOMAXPROCS at a time; each one starts
// from a different top-level element, but resolving a global's declared
// type or a class's base/field types can itself trigger monomorphizing some
// other prototype (or the very one already queued as its own work item), so
// FunctionPrototype/ClassPrototype guard their instance caches with a mutex
// rather than assuming per-item isolation. Everything else they touch (the
// diagnostic bag, the type registry) is already safe for concurrent access.
// ResolveAll returns the first error a worker returns, if any — none of the
// current work ever returns a non-nil error, but the signature accepts a
// context so a future worker that does real I/O (fetching an external
// declaration file, say) can honor cancellation without a signature change.
func ResolveAll(ctx context.Context, p *Program) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, elem := range p.Elements {
		elem := elem
		switch v := elem.(type) {
		case *Global:
			if v.Decl == nil || v.Type != nil {
				continue
			}
			g.Go(func() error {
				resolveGlobalType(p, v)
				return ctx.Err()
			})
		case *FunctionPrototype:
			if v.IsGeneric() {
				continue
			}
			g.Go(func() error {
				v.Resolve(p, nil, nil, nil)
				return ctx.Err()
			})
		case *ClassPrototype:
			if v.IsGeneric() {
				continue
			}
			g.Go(func() error {
				v.Resolve(p, nil, nil)
				return ctx.Err()
			})
		}
	}
	return g.Wait()
}

func resolveGlobalType(p *Program, g *Global) {
	scope := Scope{Program: p, File: g.File, Namespace: g.Namespace}
	switch d := g.Decl.(type) {
	case *ast.VariableDecl:
		g.Type = ResolveType(scope, d.Type)
	case *ast.FieldDecl:
		g.Type = ResolveType(scope, d.Type)
	}
}
