package element

import (
	"tsbind/internal/ast"
	"tsbind/internal/types"
)

// Scope captures the lexical context a type node or expression is resolved
// against (spec.md §4.2/§4.3): which file supplies file-scoped internal
// names, which container (namespace or class) supplies member lookups, an
// optional enclosing function for locals, and the contextual type-argument
// substitutions currently in effect.
type Scope struct {
	Program *Program
	File    *ast.File
	// Function is non-nil while resolving inside a function body; it
	// supplies local-variable lookup and (via InstanceMethodOf) the
	// receiver `this` resolves to.
	Function *Function
	// Namespace is the innermost enclosing namespace, class prototype or
	// class instance, nil at file scope.
	Namespace Element
	// Contextual maps a type-parameter name to its bound concrete Type,
	// merged from an enclosing class and this function/instantiation's own
	// type parameters (spec.md §3's "contextual type arguments" invariant).
	Contextual map[string]*types.Type
}
