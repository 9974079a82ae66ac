package element

import (
	"tsbind/internal/ast"
	"tsbind/internal/diag"
	"tsbind/internal/ident"
	"tsbind/internal/source"
)

// ResolveElement resolves an identifier/property-access/this/new expression
// to the Element it denotes (spec.md §4.3), reporting Cannot_find_name_0,
// Property_0_does_not_exist_on_type_1, or
// _this_cannot_be_referenced_in_current_location as appropriate and
// returning nil on failure.
func ResolveElement(scope Scope, e *ast.Expr) Element {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ast.ExprThis:
		if scope.Function == nil || scope.Function.InstanceMethodOf == nil {
			diag.ReportError(scope.Program.Reporter, diag.SemaThisOutsideInstance, e.Range,
				"'this' cannot be referenced in current location.").Emit()
			return nil
		}
		return scope.Function.InstanceMethodOf
	case ast.ExprIdentifier:
		elem := resolveByName(scope, e.Name)
		if elem == nil {
			reportCannotFindName(scope.Program, e.Range, e.Name)
		}
		return elem
	case ast.ExprPropertyAccess:
		receiver := ResolveElement(scope, e.Receiver)
		if receiver == nil {
			return nil
		}
		return resolvePropertyOn(scope, receiver, e.Property, e.Range)
	case ast.ExprNew:
		return ResolveElement(scope, e.Callee)
	default:
		return nil
	}
}

// resolveByName walks the lexical scope chain spec.md §4.3 describes: the
// enclosing function's locals, then each enclosing namespace or class
// (checking a class's resolved instance members first, matching the
// implicit-this shorthand `field` means `this.field` inside a method), then
// the current file's file-scoped globals, then the flat global namespace
// (`@global`-promoted or built-in entities keyed by bare name).
func resolveByName(scope Scope, name string) Element {
	if scope.Function != nil {
		if local, ok := scope.Function.Locals[name]; ok {
			return local
		}
	}
	for ns := scope.Namespace; ns != nil; ns = ns.Base().Namespace {
		switch v := ns.(type) {
		case *Class:
			if member, ok := lookupInstanceMember(v, name); ok {
				return member
			}
		case *ClassPrototype:
			if member, ok := v.InstanceMembers[name]; ok {
				return member
			}
		}
		if member, ok := ns.Base().Members[name]; ok {
			return member
		}
	}
	if scope.File != nil {
		if elem, ok := scope.Program.Elements[ident.FileScoped(scope.File.Path, name)]; ok {
			return elem
		}
	}
	if elem, ok := scope.Program.Elements[name]; ok {
		return elem
	}
	return nil
}

// lookupInstanceMember walks a class instance's base-class chain looking
// for a resolved instance member (spec.md §4.3 inheritance rule).
func lookupInstanceMember(cls *Class, name string) (Element, bool) {
	for c := cls; c != nil; c = c.BaseClass {
		if member, ok := c.Base().Members[name]; ok {
			return member, true
		}
	}
	return nil, false
}

func resolvePropertyOn(scope Scope, receiver Element, prop string, r source.Range) Element {
	switch v := receiver.(type) {
	case *Namespace:
		if member, ok := v.Members[prop]; ok {
			return member
		}
	case *Enum:
		if member, ok := v.Members[prop]; ok {
			return member
		}
	case *ClassPrototype:
		if member, ok := v.Members[prop]; ok {
			return member
		}
	case *Class:
		if member, ok := lookupInstanceMember(v, prop); ok {
			return member
		}
	}
	reportPropertyDoesNotExist(scope.Program, r, prop, receiver.Base().SimpleName)
	return nil
}
