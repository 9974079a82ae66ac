package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tsbind/internal/ast"
	"tsbind/internal/diagfmt"
	"tsbind/internal/element"
	"tsbind/internal/source"
	"tsbind/internal/types"
)

var monoCmd = &cobra.Command{
	Use:   "mono [flags] <fixture.json> <prototype-internal-name> <type-args...>",
	Short: "Monomorphize a single generic function or class prototype",
	Long: `mono binds the given fixture, then resolves one named generic
FunctionPrototype or ClassPrototype against the given comma-free list of
already-resolved type names (e.g. "i32", "MyClass"), printing the concrete
instance's internal name or the diagnostics produced trying to build it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMono,
}

func init() {
	monoCmd.Flags().String("target", "wasm32", "build target (wasm32|wasm64)")
}

func runMono(cmd *cobra.Command, args []string) error {
	fixturePath, protoName, typeArgNames := args[0], args[1], args[2:]

	target := types.TargetWasm32
	if t, _ := cmd.Flags().GetString("target"); t == "wasm64" {
		target = types.TargetWasm64
	}
	prog := element.NewProgram(element.Options{Target: target})

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", fixturePath, err)
	}
	fx, err := ast.DecodeFixture(source.FileID(1), data)
	if err != nil {
		return fmt.Errorf("failed to decode fixture %s: %w", fixturePath, err)
	}
	prog.AddSource(fx.File)
	element.Bind(prog)
	if err := element.ResolveAll(context.Background(), prog); err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	elem, ok := prog.Elements[protoName]
	if !ok {
		return fmt.Errorf("no such prototype: %s", protoName)
	}

	typeArgs := make([]*types.Type, 0, len(typeArgNames))
	for _, name := range typeArgNames {
		t, ok := prog.Types.Get(name)
		if !ok {
			return fmt.Errorf("unresolved type argument %q (%s)", name, strings.Join(typeArgNames, ", "))
		}
		typeArgs = append(typeArgs, t)
	}

	var internalName string
	switch v := elem.(type) {
	case *element.FunctionPrototype:
		fn := v.Resolve(prog, typeArgs, nil, nil)
		if fn != nil {
			internalName = fn.InternalName
		}
	case *element.ClassPrototype:
		cls := v.Resolve(prog, typeArgs, nil)
		if cls != nil {
			internalName = cls.InternalName
		}
	default:
		return fmt.Errorf("%s is not a generic function or class prototype (kind: %s)", protoName, elem.Base().Kind)
	}

	prog.Bag.Sort()
	files := map[source.FileID]string{1: fixturePath}
	diagfmt.Pretty(os.Stdout, prog.Bag, files, diagfmt.PrettyOptions{Color: wantColor(cmd)})

	if internalName == "" {
		cmd.SilenceUsage = true
		return fmt.Errorf("")
	}
	fmt.Fprintln(os.Stdout, internalName)
	return nil
}
