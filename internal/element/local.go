package element

import "tsbind/internal/types"

// Local is a function-local variable or parameter. Unlike every other
// entity kind it is never installed in Program.elements — it only exists
// inside a Function's locals map (spec.md §3).
type Local struct {
	Base
	Index int
	Type  *types.Type
}

