package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultSwatchDir = ".swatch"
	PaletteFileName  = "palettes.toml"
	ConfigFileName   = "config.toml"
	GlobalConfigDir  = ".config/swatch"
)

// Paths provides path resolution for swatch data files.
type Paths struct {
	root string // Directory holding palettes.toml
}

// NewPaths creates a Paths resolver rooted at dataDir.
func NewPaths(dataDir string) *Paths {
	return &Paths{root: dataDir}
}

// NewProjectPaths creates a Paths resolver for a project's .swatch directory.
func NewProjectPaths(projectRoot string) *Paths {
	return NewPaths(filepath.Join(projectRoot, DefaultSwatchDir))
}

// Root returns the data directory.
func (p *Paths) Root() string {
	return p.root
}

// PaletteFilePath returns the palette file path.
func (p *Paths) PaletteFilePath() string {
	return filepath.Join(p.root, PaletteFileName)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	dir := GlobalConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFileName)
}

// GlobalConfigDirPath returns the directory for global config and the
// fallback palette file.
func GlobalConfigDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir)
}
