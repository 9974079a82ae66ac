package ast

import "testing"

func TestDecodeFixtureTopLevel(t *testing.T) {
	doc := []byte(`{
		"path": "main.ts",
		"items": [
			{"kind": "VARIABLE", "name": "count", "modifiers": ["export"], "type": {"name": "i32"}},
			{"kind": "FUNCTION", "name": "add", "parameters": [
				{"name": "a", "type": {"name": "i32"}},
				{"name": "b", "type": {"name": "i32"}}
			], "returnType": {"name": "i32"}, "hasBody": true},
			{"kind": "CLASS", "name": "Box", "typeParameters": [{"name": "T"}], "members": [
				{"kind": "FIELD", "name": "value", "type": {"name": "T"}},
				{"kind": "METHOD", "name": "value", "accessor": "get", "returnType": {"name": "T"}, "hasBody": true}
			]}
		],
		"probes": [
			{"name": "find-add", "expr": {"kind": "IDENTIFIER", "name": "add"}}
		]
	}`)

	fx, err := DecodeFixture(1, doc)
	if err != nil {
		t.Fatalf("DecodeFixture failed: %v", err)
	}
	if fx.File.Path != "main.ts" {
		t.Fatalf("unexpected path %q", fx.File.Path)
	}
	if len(fx.File.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(fx.File.Items))
	}

	v, ok := fx.File.Items[0].(*VariableDecl)
	if !ok {
		t.Fatalf("item 0: expected *VariableDecl, got %T", fx.File.Items[0])
	}
	if !v.IsExported() || v.Type == nil || v.Type.Name != "i32" {
		t.Errorf("unexpected variable decl: %+v", v)
	}

	fn, ok := fx.File.Items[1].(*FunctionDecl)
	if !ok {
		t.Fatalf("item 1: expected *FunctionDecl, got %T", fx.File.Items[1])
	}
	if len(fn.Parameters) != 2 || fn.ReturnType.Name != "i32" {
		t.Errorf("unexpected function decl: %+v", fn)
	}

	cls, ok := fx.File.Items[2].(*ClassDecl)
	if !ok {
		t.Fatalf("item 2: expected *ClassDecl, got %T", fx.File.Items[2])
	}
	if !cls.IsGeneric() || len(cls.Members) != 2 {
		t.Fatalf("unexpected class decl: %+v", cls)
	}
	if _, ok := cls.Members[0].(*FieldDecl); !ok {
		t.Errorf("member 0: expected *FieldDecl, got %T", cls.Members[0])
	}
	getter, ok := cls.Members[1].(*FunctionDecl)
	if !ok || getter.Accessor != ModGet {
		t.Errorf("member 1: expected getter *FunctionDecl, got %+v", cls.Members[1])
	}

	if len(fx.Probes) != 1 || fx.Probes[0].Expr.Kind != ExprIdentifier || fx.Probes[0].Expr.Name != "add" {
		t.Errorf("unexpected probes: %+v", fx.Probes)
	}
}

func TestDecodeFixtureImportExportDefaultModuleInternalPathFromModulePath(t *testing.T) {
	doc := []byte(`{
		"path": "b.ts",
		"items": [
			{"kind": "IMPORT", "modulePath": "c.ts", "specifiers": [{"identifier": "helper"}]},
			{"kind": "EXPORT", "fromModule": true, "modulePath": "c.ts", "exportSpecifiers": [{"identifier": "helper"}]}
		]
	}`)

	fx, err := DecodeFixture(1, doc)
	if err != nil {
		t.Fatalf("DecodeFixture failed: %v", err)
	}
	imp, ok := fx.File.Items[0].(*ImportDecl)
	if !ok || imp.ModuleInternalPath != "c.ts" {
		t.Fatalf("expected import's ModuleInternalPath to default to modulePath %q, got %+v", "c.ts", imp)
	}
	exp, ok := fx.File.Items[1].(*ExportDecl)
	if !ok || exp.ModuleInternalPath != "c.ts" {
		t.Fatalf("expected export's ModuleInternalPath to default to modulePath %q, got %+v", "c.ts", exp)
	}
}

func TestDecodeFixtureExplicitModuleInternalPathOverridesModulePath(t *testing.T) {
	doc := []byte(`{
		"path": "b.ts",
		"items": [
			{"kind": "IMPORT", "modulePath": "./c", "moduleInternalPath": "c.ts", "specifiers": [{"identifier": "helper"}]}
		]
	}`)

	fx, err := DecodeFixture(1, doc)
	if err != nil {
		t.Fatalf("DecodeFixture failed: %v", err)
	}
	imp, ok := fx.File.Items[0].(*ImportDecl)
	if !ok || imp.ModulePath != "./c" || imp.ModuleInternalPath != "c.ts" {
		t.Fatalf("expected ModulePath %q and ModuleInternalPath %q, got %+v", "./c", "c.ts", imp)
	}
}

func TestDecodeFixtureRejectsUnknownKind(t *testing.T) {
	doc := []byte(`{"path": "bad.ts", "items": [{"kind": "BOGUS", "name": "x"}]}`)
	if _, err := DecodeFixture(1, doc); err == nil {
		t.Fatal("expected an error for an unknown declaration kind")
	}
}

func TestDecodeFixtureRejectsUnknownModifier(t *testing.T) {
	doc := []byte(`{"path": "bad.ts", "items": [{"kind": "VARIABLE", "name": "x", "modifiers": ["bogus"]}]}`)
	if _, err := DecodeFixture(1, doc); err == nil {
		t.Fatal("expected an error for an unknown modifier")
	}
}
