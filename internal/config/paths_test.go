package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaths(t *testing.T) {
	p := NewProjectPaths("/work/app")
	assert.Equal(t, filepath.Join("/work/app", ".swatch"), p.Root())
	assert.Equal(t, filepath.Join("/work/app", ".swatch", "palettes.toml"), p.PaletteFilePath())
}

func TestGlobalPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "swatch"), GlobalConfigDirPath())
	assert.Equal(t, filepath.Join(home, ".config", "swatch", "config.toml"), GlobalConfigPath())
}
