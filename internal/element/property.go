package element

// Property is the shared entity a getter/setter accessor pair (or either
// half alone) is resolved to, keyed by the accessor's base name (spec.md
// §4.1).
type Property struct {
	Base
	Class            *ClassPrototype
	GetterPrototype  *FunctionPrototype
	SetterPrototype  *FunctionPrototype
	StaticAccessor   bool
}

