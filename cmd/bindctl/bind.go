package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"tsbind/internal/ast"
	"tsbind/internal/diagfmt"
	"tsbind/internal/element"
	"tsbind/internal/ident"
	"tsbind/internal/source"
	"tsbind/internal/types"
)

var bindCmd = &cobra.Command{
	Use:   "bind [flags] [fixture.json...]",
	Short: "Bind and resolve one or more AST fixtures and report diagnostics",
	Long: `bind loads each fixture as a source file, runs the binder's registration
pass, resolves queued cross-file imports/exports, eagerly resolves every
non-generic global/function/class, and finally resolves any expression
probes the fixtures declare. If no fixture paths are given, bindctl.toml is
searched for starting at the current directory.`,
	RunE: runBind,
}

func init() {
	bindCmd.Flags().String("target", "", "override the manifest's build target (wasm32|wasm64)")
	bindCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
}

func runBind(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		manifest, ok, err := loadManifest(".")
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf(noManifestMessage)
		}
		paths = manifest.resolveSources()
		if t, _ := cmd.Flags().GetString("target"); t == "" {
			cmd.Flags().Set("target", manifest.Config.Build.Target)
		}
	}

	target := types.TargetWasm32
	if t, _ := cmd.Flags().GetString("target"); t == "wasm64" {
		target = types.TargetWasm64
	}

	prog := element.NewProgram(element.Options{Target: target})

	files := make(map[source.FileID]string, len(paths))
	var probes []probeRef
	for i, path := range paths {
		idValue, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return fmt.Errorf("too many fixture files: %w", err)
		}
		id := source.FileID(idValue)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read fixture %s: %w", path, err)
		}
		fx, err := ast.DecodeFixture(id, data)
		if err != nil {
			return fmt.Errorf("failed to decode fixture %s: %w", path, err)
		}
		files[id] = path
		prog.AddSource(fx.File)
		for _, p := range fx.Probes {
			probes = append(probes, probeRef{file: fx.File, probe: p})
		}
	}

	element.Bind(prog)
	if err := element.ResolveAll(context.Background(), prog); err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	for _, pr := range probes {
		scope := element.Scope{Program: prog, File: pr.file, Namespace: resolveProbeNamespace(prog, pr.file, pr.probe.Namespace)}
		elem := element.ResolveElement(scope, pr.probe.Expr)
		if elem == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "probe %s: unresolved\n", pr.probe.Name)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "probe %s: %s %s\n", pr.probe.Name, elem.Base().Kind, elem.Base().InternalName)
	}

	prog.Bag.Sort()
	withNotes, _ := cmd.Flags().GetBool("with-notes")
	maxDiag, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	format, _ := cmd.Root().PersistentFlags().GetString("format")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	if quiet && prog.Bag.Len() == 0 {
		return nil
	}
	switch format {
	case "json":
		if err := diagfmt.JSON(cmd.OutOrStdout(), prog.Bag, files, diagfmt.JSONOptions{IncludeNotes: withNotes, Max: maxDiag}); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "pretty":
		diagfmt.Pretty(cmd.OutOrStdout(), prog.Bag, files, diagfmt.PrettyOptions{Color: wantColor(cmd), ShowNotes: withNotes, Max: maxDiag})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if prog.Bag.HasErrors() {
		cmd.SilenceUsage = true
		return fmt.Errorf("")
	}
	return nil
}

type probeRef struct {
	file  *ast.File
	probe ast.Probe
}

// resolveProbeNamespace walks a probe's dotted namespace path ("" for file
// scope) down to the innermost named container, the same way ResolveElement
// itself walks an enclosing namespace chain: the outermost segment is
// looked up as an identifier (file scope, then global), and each further
// segment is looked up in the previous container's own Members map by its
// simple name (register places every child there under its bare name, not
// its internal name). A path segment that doesn't resolve leaves the probe
// at the last container found rather than failing the whole command
// outright.
func resolveProbeNamespace(prog *element.Program, file *ast.File, dotted string) element.Element {
	if dotted == "" {
		return nil
	}
	parts := strings.Split(dotted, ".")
	elem, ok := prog.Elements[ident.FileScoped(file.Path, parts[0])]
	if !ok {
		elem, ok = prog.Elements[parts[0]]
	}
	if !ok {
		return nil
	}
	for _, part := range parts[1:] {
		next, ok := elem.Base().Members[part]
		if !ok {
			return elem
		}
		elem = next
	}
	return elem
}
