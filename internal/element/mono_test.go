package element

import (
	"sync"
	"testing"

	"tsbind/internal/ast"
)

func TestClassPrototypeConcurrentResolveIsSafeAndCached(t *testing.T) {
	cls := &ast.ClassDecl{
		DeclBase: ast.DeclBase{Kind: ast.DeclClass, Name: "Foo", InternalName: "Foo"},
	}
	f := ast.NewBuilder(1, "main.ts").Add(cls).Build()

	prog := newTestProgram()
	prog.AddSource(f)
	Bind(prog)

	cp := prog.Elements["Foo"].(*ClassPrototype)

	const n = 32
	results := make([]*Class, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = cp.Resolve(prog, nil, nil)
		}()
	}
	wg.Wait()

	for i, cls := range results {
		if cls == nil {
			t.Fatalf("goroutine %d: expected a resolved Class, got nil", i)
		}
		if cls != results[0] {
			t.Fatalf("goroutine %d: expected every concurrent Resolve to share the same cached instance", i)
		}
	}
	if len(cp.Instances()) != 1 {
		t.Fatalf("expected exactly one cached instance, got %d", len(cp.Instances()))
	}
}

func TestFunctionPrototypeConcurrentResolveIsSafeAndCached(t *testing.T) {
	f := ast.NewBuilder(1, "main.ts").
		Add(&ast.FunctionDecl{DeclBase: ast.DeclBase{Kind: ast.DeclFunction, Name: "identity", InternalName: "identity"}, Parameters: []ast.Param{{Name: "a", Type: &ast.TypeNode{Name: "i32"}}}, ReturnType: &ast.TypeNode{Name: "i32"}}).
		Build()

	prog := newTestProgram()
	prog.AddSource(f)
	Bind(prog)

	fp := prog.Elements["identity"].(*FunctionPrototype)

	const n = 32
	results := make([]*Function, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = fp.Resolve(prog, nil, nil, nil)
		}()
	}
	wg.Wait()

	for i, fn := range results {
		if fn == nil {
			t.Fatalf("goroutine %d: expected a resolved Function, got nil", i)
		}
		if fn != results[0] {
			t.Fatalf("goroutine %d: expected every concurrent Resolve to share the same cached instance", i)
		}
	}
	if len(fp.Instances()) != 1 {
		t.Fatalf("expected exactly one cached instance, got %d", len(fp.Instances()))
	}
}
