package ast

import "tsbind/internal/source"

// Expr is the small expression surface the resolver reads: identifiers,
// property accesses, `this`, and `new`. Anything else is out of scope for
// this component (spec.md §4.3 treats other expression kinds as
// "not implemented").
type Expr struct {
	Kind     ExprKind
	Range    source.Range
	Name     string // ExprIdentifier
	Receiver *Expr  // ExprPropertyAccess
	Property string // ExprPropertyAccess
	Callee   *Expr  // ExprNew: the constructed class's type expression, given
	// as an identifier or property-access expression naming the class.
}

// Identifier builds an ExprIdentifier node.
func Identifier(name string, r source.Range) *Expr {
	return &Expr{Kind: ExprIdentifier, Name: name, Range: r}
}

// PropertyAccess builds an ExprPropertyAccess node.
func PropertyAccess(receiver *Expr, property string, r source.Range) *Expr {
	return &Expr{Kind: ExprPropertyAccess, Receiver: receiver, Property: property, Range: r}
}

// This builds an ExprThis node.
func This(r source.Range) *Expr {
	return &Expr{Kind: ExprThis, Range: r}
}

// New builds an ExprNew node wrapping the constructed class's callee
// expression.
func New(callee *Expr, r source.Range) *Expr {
	return &Expr{Kind: ExprNew, Callee: callee, Range: r}
}
