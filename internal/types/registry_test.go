package types

import (
	"sync"
	"testing"
)

func TestNewRegistrySeedsPrimitives(t *testing.T) {
	r := NewRegistry(TargetWasm32)
	for _, name := range []string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "bool", "void", "f32", "f64"} {
		if !r.Has(name) {
			t.Errorf("expected primitive %q to be pre-seeded", name)
		}
	}
	number, ok := r.Get("number")
	if !ok || number.Kind != KindF64 {
		t.Errorf("expected number to alias f64, got %+v", number)
	}
	boolean, ok := r.Get("boolean")
	if !ok || boolean.Kind != KindBool {
		t.Errorf("expected boolean to alias bool, got %+v", boolean)
	}
}

func TestNewRegistryTargetDependentPointerAliases(t *testing.T) {
	r32 := NewRegistry(TargetWasm32)
	isize32, _ := r32.Get("isize")
	if isize32.Kind != KindI32 {
		t.Errorf("expected isize to alias i32 on wasm32, got %s", isize32.Kind)
	}

	r64 := NewRegistry(TargetWasm64)
	isize64, _ := r64.Get("isize")
	if isize64.Kind != KindI64 {
		t.Errorf("expected isize to alias i64 on wasm64, got %s", isize64.Kind)
	}
}

func TestRegistryGetMiss(t *testing.T) {
	r := NewRegistry(TargetWasm32)
	if _, ok := r.Get("DoesNotExist"); ok {
		t.Fatal("expected a miss for an unregistered name")
	}
}

func TestRegistrySetAndHas(t *testing.T) {
	r := NewRegistry(TargetWasm32)
	if r.Has("Widget") {
		t.Fatal("did not expect Widget to be pre-seeded")
	}
	widget := MakeClassType(TargetWasm32, "Widget", nil)
	r.Set("Widget", widget)
	if !r.Has("Widget") {
		t.Fatal("expected Widget to be registered after Set")
	}
	got, ok := r.Get("Widget")
	if !ok || got != widget {
		t.Fatalf("expected Get to return the exact registered pointer, got %+v", got)
	}
}

func TestMakeClassTypeSizeTracksPointerWidth(t *testing.T) {
	c32 := MakeClassType(TargetWasm32, "Foo", "ref")
	if c32.SizeBytes != 4 {
		t.Errorf("expected 4-byte object type on wasm32, got %d", c32.SizeBytes)
	}
	c64 := MakeClassType(TargetWasm64, "Foo", "ref")
	if c64.SizeBytes != 8 {
		t.Errorf("expected 8-byte object type on wasm64, got %d", c64.SizeBytes)
	}
	if c32.ClassRef != "ref" {
		t.Errorf("expected ClassRef to round-trip, got %v", c32.ClassRef)
	}
}

func TestRegistryConcurrentSetIsSafe(t *testing.T) {
	r := NewRegistry(TargetWasm32)
	const n = 64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			r.Set("concurrent", MakeClassType(TargetWasm32, "concurrent", i))
		}()
	}
	wg.Wait()
	if !r.Has("concurrent") {
		t.Fatal("expected concurrent writes to leave a valid entry")
	}
}

func TestNativeOfClassifiesByPointerWidth(t *testing.T) {
	cases := []struct {
		kind Kind
		want Native
	}{
		{KindI8, NativeI32}, {KindI32, NativeI32}, {KindBool, NativeI32},
		{KindI64, NativeI64}, {KindU64, NativeI64},
		{KindF32, NativeF32},
		{KindF64, NativeF64},
	}
	for _, c := range cases {
		n, ok := NativeOf(Type{Kind: c.kind}, 4)
		if !ok || n != c.want {
			t.Errorf("NativeOf(%s): got (%s, %v), want %s", c.kind, n, ok, c.want)
		}
	}
	if _, ok := NativeOf(Type{Kind: KindVoid}, 4); ok {
		t.Error("expected KindVoid to have no native class")
	}
	if n, ok := NativeOf(Type{Kind: KindClass}, 4); !ok || n != NativeI32 {
		t.Errorf("expected KindClass to be NativeI32 on 32-bit target, got (%s, %v)", n, ok)
	}
	if n, ok := NativeOf(Type{Kind: KindClass}, 8); !ok || n != NativeI64 {
		t.Errorf("expected KindClass to be NativeI64 on 64-bit target, got (%s, %v)", n, ok)
	}
}
