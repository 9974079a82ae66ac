package element

import (
	"fmt"

	"tsbind/internal/ast"
	"tsbind/internal/diag"
	"tsbind/internal/source"
	"tsbind/internal/types"
)

// ResolveType resolves a type node to a concrete Type (spec.md §4.2): a
// contextual type-parameter substitution, a primitive, a chased type alias,
// or a class/interface name that gets monomorphized on demand. It reports
// Cannot_find_name_0 for an unresolvable name and returns nil.
func ResolveType(scope Scope, node *ast.TypeNode) *types.Type {
	if node == nil {
		return nil
	}
	if len(node.TypeArguments) == 0 {
		if t, ok := scope.Contextual[node.Name]; ok {
			return t
		}
		if t, ok := scope.Program.Types.Get(node.Name); ok {
			return t
		}
	}
	if aliased, ok := scope.Program.TypeAliases[node.Name]; ok {
		return resolveAliasChain(scope, aliased, node.Range, map[string]bool{node.Name: true})
	}

	elem := resolveByName(scope, node.Name)
	if elem == nil {
		reportCannotFindName(scope.Program, node.Range, node.Name)
		return nil
	}
	cp, ok := elem.(*ClassPrototype)
	if !ok {
		reportCannotFindName(scope.Program, node.Range, node.Name)
		return nil
	}
	typeArgs, ok := ResolveTypeArguments(scope, node.TypeArguments)
	if !ok {
		return nil
	}
	cls := cp.Resolve(scope.Program, typeArgs, scope.Contextual)
	if cls == nil {
		return nil
	}
	return cls.ObjectType
}

// ResolveTypeArguments resolves each element of a type-argument list in
// order. The second return value is false if any argument failed to
// resolve, in which case the caller should abandon monomorphization rather
// than build an instance from a partially-resolved argument list.
func ResolveTypeArguments(scope Scope, nodes []*ast.TypeNode) ([]*types.Type, bool) {
	if len(nodes) == 0 {
		return nil, true
	}
	out := make([]*types.Type, len(nodes))
	ok := true
	for i, n := range nodes {
		t := ResolveType(scope, n)
		if t == nil {
			ok = false
			continue
		}
		out[i] = t
	}
	return out, ok
}

// resolveAliasChain follows `type A = B; type B = C;` chains to their
// concrete type, guarding against a cycle with a per-call visited set
// (spec.md §4.2). r is the use site's range, reported when the chain cycles;
// a final link that names no known type is reported by ResolveType at that
// link's own range.
func resolveAliasChain(scope Scope, node *ast.TypeNode, r source.Range, visited map[string]bool) *types.Type {
	if len(node.TypeArguments) == 0 {
		if t, ok := scope.Contextual[node.Name]; ok {
			return t
		}
		if t, ok := scope.Program.Types.Get(node.Name); ok {
			return t
		}
	}
	if next, ok := scope.Program.TypeAliases[node.Name]; ok {
		if visited[node.Name] {
			reportCannotFindName(scope.Program, r, node.Name)
			return nil
		}
		visited[node.Name] = true
		return resolveAliasChain(scope, next, r, visited)
	}
	return ResolveType(scope, node)
}

func reportCannotFindName(prog *Program, r source.Range, name string) {
	diag.ReportError(prog.Reporter, diag.SemaCannotFindName, r,
		fmt.Sprintf("Cannot find name '%s'.", name)).Emit()
}

func reportPropertyDoesNotExist(prog *Program, r source.Range, prop, onType string) {
	diag.ReportError(prog.Reporter, diag.SemaPropertyDoesNotExist, r,
		fmt.Sprintf("Property '%s' does not exist on type '%s'.", prop, onType)).Emit()
}
