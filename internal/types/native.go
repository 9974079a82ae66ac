package types

// Native buckets a concrete Type into one of the stack machine's four
// register classes. It exists only to key temp-local free-lists (spec.md
// §4.5) — it carries no other semantic weight.
type Native uint8

const (
	NativeInvalid Native = iota
	NativeI32
	NativeI64
	NativeF32
	NativeF64
)

func (n Native) String() string {
	switch n {
	case NativeI32:
		return "i32"
	case NativeI64:
		return "i64"
	case NativeF32:
		return "f32"
	case NativeF64:
		return "f64"
	default:
		return "invalid"
	}
}

// NativeOf classifies t into its register class for a given pointer width
// (used for isize/usize/KindClass, which are pointer-sized). ok is false for
// KindVoid or KindInvalid, which occupy no register.
func NativeOf(t Type, pointerWidth uint32) (n Native, ok bool) {
	switch t.Kind {
	case KindI8, KindI16, KindI32, KindU8, KindU16, KindU32, KindBool:
		return NativeI32, true
	case KindI64, KindU64:
		return NativeI64, true
	case KindF32:
		return NativeF32, true
	case KindF64:
		return NativeF64, true
	case KindClass:
		if pointerWidth == 8 {
			return NativeI64, true
		}
		return NativeI32, true
	default:
		return NativeInvalid, false
	}
}
