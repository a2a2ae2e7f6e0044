package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/swatch/internal/config"
)

// Result describes where palettes were found.
type Result struct {
	ProjectRoot string // Directory containing .swatch/, empty for the global fallback
	DataDir     string // Directory holding palettes.toml
	Global      bool   // Whether the global config directory was used
}

// Paths returns a path resolver for the discovered data directory.
func (r *Result) Paths() *config.Paths {
	return config.NewPaths(r.DataDir)
}

// DiscoverPalettes finds the palette location by walking up from cwd.
func DiscoverPalettes() (*Result, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverPalettesFrom(cwd, config.GlobalConfigDirPath())
}

// DiscoverPalettesFrom finds the palette location starting from a given directory.
// Priority:
// 1. Nearest ancestor containing .swatch/palettes.toml
// 2. The global config directory
//
// Returns nil when neither exists and globalDir is empty.
func DiscoverPalettesFrom(startDir, globalDir string) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		dataDir := filepath.Join(dir, config.DefaultSwatchDir)
		if _, err := os.Stat(filepath.Join(dataDir, config.PaletteFileName)); err == nil {
			return &Result{ProjectRoot: dir, DataDir: dataDir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if globalDir == "" {
		return nil, nil
	}
	// The global file may not exist yet; built-in palettes still apply.
	return &Result{DataDir: globalDir, Global: true}, nil
}
