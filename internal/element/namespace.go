package element

import "tsbind/internal/ast"

// Namespace is a semantic container: its Members map may hold classes,
// enums, functions, interfaces, nested namespaces, type aliases, and
// variables (spec.md §3).
type Namespace struct {
	Base
	Decl *ast.NamespaceDecl
}

