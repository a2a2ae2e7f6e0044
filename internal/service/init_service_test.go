package service

import (
	"testing"

	"github.com/amterp/swatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitService_SeedsBuiltins(t *testing.T) {
	gs := &testGlobalStore{}
	ps := newTestPaletteStore()

	created, err := NewInitService(gs, ps).Initialize()
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, gs.ensured)
	require.NotNil(t, ps.file)
	assert.Len(t, ps.file.Palettes, len(model.BuiltinTypes))

	stroke, _ := model.DefaultPalette(model.ElementStroke)
	assert.Equal(t, stroke, ps.file.Get(model.ElementStroke).Colors)
}

func TestInitService_ExistingFileUntouched(t *testing.T) {
	gs := &testGlobalStore{}
	ps := newTestPaletteStore()
	ps.file = &model.PaletteFile{Palettes: []model.Palette{{Type: "brand", Colors: []string{"#123456"}}}}

	created, err := NewInitService(gs, ps).Initialize()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, ps.saves)
	assert.Len(t, ps.file.Palettes, 1)
}
