package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no bindctl.toml found\nplease specify fixture files explicitly, e.g.:\n  bindctl bind path/to/fixture.json"

// projectConfig is a bindctl.toml manifest: which target the program binds
// for and which fixture files make up the program, in load order.
type projectConfig struct {
	Package packageConfig `toml:"package"`
	Build   buildConfig   `toml:"build"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type buildConfig struct {
	Target  string   `toml:"target"`  // "wasm32" (default) or "wasm64"
	Sources []string `toml:"sources"` // fixture paths, relative to the manifest
}

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "bindctl.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*projectManifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, true, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("build") || len(cfg.Build.Sources) == 0 {
		return nil, true, fmt.Errorf("%s: missing [build].sources", path)
	}
	if cfg.Build.Target == "" {
		cfg.Build.Target = "wasm32"
	}
	return &projectManifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// resolveSources returns the manifest's fixture paths made absolute against
// its own directory.
func (m *projectManifest) resolveSources() []string {
	out := make([]string, len(m.Config.Build.Sources))
	for i, s := range m.Config.Build.Sources {
		out[i] = filepath.Join(m.Root, filepath.FromSlash(s))
	}
	return out
}
