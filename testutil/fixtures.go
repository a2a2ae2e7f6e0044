package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
)

// TestColors returns a small palette of canonical colors.
func TestColors() []string {
	return []string{"#000000", "#ffffff", "transparent", "#fa5252", "#228be6"}
}

// TestPaletteFile returns a palette document with one override and one
// custom palette.
func TestPaletteFile() *model.PaletteFile {
	return &model.PaletteFile{
		Palettes: []model.Palette{
			{Type: model.ElementStroke, Colors: []string{"#111111", "#222222"}},
			{Type: "brand", Colors: TestColors()},
		},
	}
}

// TempSwatchDir creates a temporary project directory with an empty
// .swatch directory. Returns the project root; the directory is removed
// when the test ends.
func TempSwatchDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, config.DefaultSwatchDir), 0755); err != nil {
		t.Fatalf("failed to create swatch dir: %v", err)
	}
	return dir
}

// WritePaletteFile writes raw palettes.toml content into a project's .swatch
// directory and returns the file path.
func WritePaletteFile(t *testing.T, projectRoot, content string) string {
	t.Helper()

	path := config.NewProjectPaths(projectRoot).PaletteFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create swatch dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write palette file: %v", err)
	}
	return path
}

// NewTestPaths creates a Paths for a project rooted at the given temp directory.
func NewTestPaths(projectRoot string) *config.Paths {
	return config.NewProjectPaths(projectRoot)
}
