package element

import "tsbind/internal/ast"

// Enum is a semantic container whose Members are its EnumValue children.
type Enum struct {
	Base
	Decl *ast.EnumDecl
}


// EnumValue is one member of an Enum.
type EnumValue struct {
	Base
	Decl          *ast.EnumValueDecl
	Enum          *Enum
	ConstantValue int32
}

