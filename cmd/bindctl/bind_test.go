package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// newTestRoot builds a fresh command tree mirroring main()'s wiring, so
// tests exercise the real persistent-flag plumbing rather than calling
// runBind directly.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "bindctl"}
	root.AddCommand(bindCmd)
	root.AddCommand(monoCmd)
	root.PersistentFlags().String("color", "off", "")
	root.PersistentFlags().Bool("quiet", false, "")
	root.PersistentFlags().Int("max-diagnostics", 0, "")
	root.PersistentFlags().String("format", "pretty", "")
	return root
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

func TestBindReportsCannotFindName(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "main.json", `{
		"path": "main.ts",
		"items": [
			{"kind": "VARIABLE", "name": "x", "type": {"name": "DoesNotExist"}}
		]
	}`)

	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"bind", fixture})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected bind to report an error for an unresolvable type")
	}
	if !strings.Contains(out.String(), "Cannot_find_name_0") {
		t.Errorf("expected Cannot_find_name_0 in output, got:\n%s", out.String())
	}
}

func TestBindCleanProgramSucceeds(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "main.json", `{
		"path": "main.ts",
		"items": [
			{"kind": "VARIABLE", "name": "count", "modifiers": ["export"], "type": {"name": "i32"}},
			{"kind": "FUNCTION", "name": "add", "modifiers": ["export"], "parameters": [
				{"name": "a", "type": {"name": "i32"}},
				{"name": "b", "type": {"name": "i32"}}
			], "returnType": {"name": "i32"}, "hasBody": true}
		],
		"probes": [
			{"name": "find-add", "expr": {"kind": "IDENTIFIER", "name": "add"}}
		]
	}`)

	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"bind", fixture})
	if err := root.Execute(); err != nil {
		t.Fatalf("bind failed on a well-formed fixture: %v", err)
	}
}

func TestBindProbeResolvesInsideDeclaredNamespace(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "main.json", `{
		"path": "main.ts",
		"items": [
			{"kind": "NAMESPACE", "name": "Outer", "internalName": "Outer", "members": [
				{"kind": "FUNCTION", "name": "greet", "internalName": "Outer.greet", "returnType": {"name": "i32"}, "hasBody": true}
			]},
			{"kind": "FUNCTION", "name": "greet", "returnType": {"name": "i32"}, "hasBody": true}
		],
		"probes": [
			{"name": "inner-greet", "namespace": "Outer", "expr": {"kind": "IDENTIFIER", "name": "greet"}},
			{"name": "outer-greet", "expr": {"kind": "IDENTIFIER", "name": "greet"}}
		]
	}`)

	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"bind", fixture})
	if err := root.Execute(); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if !strings.Contains(out.String(), "probe inner-greet: function prototype Outer.greet") {
		t.Errorf("expected the namespaced probe to resolve to Outer.greet, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "probe outer-greet: function prototype greet") {
		t.Errorf("expected the file-scope probe to resolve to the top-level greet, got:\n%s", out.String())
	}
}

func TestBindMissingFixtureFileErrors(t *testing.T) {
	root := newTestRoot()
	root.SetArgs([]string{"bind", "/nonexistent/fixture.json"})
	root.SilenceErrors = true
	root.SilenceUsage = true
	if err := root.Execute(); err == nil {
		t.Fatal("expected an error reading a nonexistent fixture")
	}
}

func TestMonoResolvesGenericClass(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "generic.json", `{
		"path": "generic.ts",
		"items": [
			{"kind": "CLASS", "name": "Box", "typeParameters": [{"name": "T"}], "members": [
				{"kind": "FIELD", "name": "value", "type": {"name": "T"}}
			]}
		]
	}`)

	root := newTestRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"mono", fixture, "Box", "i32"})
	if err := root.Execute(); err != nil {
		t.Fatalf("mono failed: %v", err)
	}
}

func TestMonoRejectsNonGenericTarget(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "plain.json", `{
		"path": "plain.ts",
		"items": [
			{"kind": "VARIABLE", "name": "x", "type": {"name": "i32"}}
		]
	}`)

	root := newTestRoot()
	root.SetArgs([]string{"mono", fixture, "x"})
	root.SilenceErrors = true
	root.SilenceUsage = true
	if err := root.Execute(); err == nil {
		t.Fatal("expected mono to reject a non-prototype target")
	}
}
