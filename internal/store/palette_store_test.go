package store

import (
	"os"
	"testing"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
	"github.com/amterp/swatch/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteStore_LoadMissingFile(t *testing.T) {
	s := NewPaletteStore(config.NewPaths(t.TempDir()))

	assert.False(t, s.Exists())
	file, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, file.Palettes)
	assert.Equal(t, version.CurrentPaletteSchema(), file.SwatchSchema)
}

func TestPaletteStore_SaveLoadRoundTrip(t *testing.T) {
	s := NewPaletteStore(config.NewProjectPaths(t.TempDir()))

	require.NoError(t, s.Save(testutil.TestPaletteFile()))
	assert.True(t, s.Exists())

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Palettes, 2)
	assert.Equal(t, []string{"#111111", "#222222"}, loaded.Get(model.ElementStroke).Colors)
	assert.Equal(t, testutil.TestColors(), loaded.Get("brand").Colors)

	_, err = os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestPaletteStore_RejectsNewerSchema(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, os.WriteFile(paths.PaletteFilePath(), []byte(`swatch_schema = "palettes/2"`), 0644))

	_, err := NewPaletteStore(paths).Load()
	var schemaErr *version.SchemaVersionError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "palettes/2", schemaErr.Found)
}

func TestPaletteStore_RejectsMalformedToml(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, os.WriteFile(paths.PaletteFilePath(), []byte(`swatch_schema = `), 0644))

	_, err := NewPaletteStore(paths).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid palette file")
}
