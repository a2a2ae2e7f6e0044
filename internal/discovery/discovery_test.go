package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/swatch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverPalettesFrom_ProjectRoot(t *testing.T) {
	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "app")
	testutil.WritePaletteFile(t, projectDir, `swatch_schema = "palettes/1"`)

	result, err := DiscoverPalettesFrom(projectDir, filepath.Join(tmpDir, "global"))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, projectDir, result.ProjectRoot)
	assert.Equal(t, filepath.Join(projectDir, ".swatch"), result.DataDir)
	assert.False(t, result.Global)
}

func TestDiscoverPalettesFrom_Subdirectory(t *testing.T) {
	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "app")
	testutil.WritePaletteFile(t, projectDir, `swatch_schema = "palettes/1"`)
	nested := filepath.Join(projectDir, "src", "ui")
	require.NoError(t, os.MkdirAll(nested, 0755))

	result, err := DiscoverPalettesFrom(nested, "")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, projectDir, result.ProjectRoot)
	assert.Equal(t, filepath.Join(projectDir, ".swatch", "palettes.toml"), result.Paths().PaletteFilePath())
}

func TestDiscoverPalettesFrom_EmptySwatchDirIgnored(t *testing.T) {
	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "app")
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, ".swatch"), 0755))
	globalDir := filepath.Join(tmpDir, "global")

	result, err := DiscoverPalettesFrom(projectDir, globalDir)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Global)
	assert.Equal(t, globalDir, result.DataDir)
	assert.Empty(t, result.ProjectRoot)
}

func TestDiscoverPalettesFrom_NothingFound(t *testing.T) {
	result, err := DiscoverPalettesFrom(t.TempDir(), "")
	require.NoError(t, err)
	assert.Nil(t, result)
}
