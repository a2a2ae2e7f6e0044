package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPalettes(t *testing.T) {
	for _, pt := range BuiltinTypes {
		t.Run(string(pt), func(t *testing.T) {
			colors, ok := DefaultPalette(pt)
			require.True(t, ok)
			assert.Len(t, colors, 15)
			assert.True(t, pt.IsBuiltin())

			seen := make(map[string]bool)
			for _, c := range colors {
				assert.False(t, seen[c], "duplicate color %s", c)
				seen[c] = true
			}
		})
	}

	_, ok := DefaultPalette("notes")
	assert.False(t, ok)
	assert.False(t, PaletteType("notes").IsBuiltin())
}

func TestDefaultPaletteReturnsCopy(t *testing.T) {
	colors, _ := DefaultPalette(ElementStroke)
	colors[0] = "#123456"

	again, _ := DefaultPalette(ElementStroke)
	assert.Equal(t, "#000000", again[0])
}

func TestPaletteFile_SetGetRemove(t *testing.T) {
	f := &PaletteFile{}
	assert.Nil(t, f.Get(ElementStroke))

	f.Set(ElementStroke, []string{"#000"})
	f.Set("notes", []string{"#fff"})
	f.Set(ElementStroke, []string{"#111"})

	require.Len(t, f.Palettes, 2)
	assert.Equal(t, []string{"#111"}, f.Get(ElementStroke).Colors)

	assert.True(t, f.Remove(ElementStroke))
	assert.False(t, f.Remove(ElementStroke))
	assert.Equal(t, []Palette{{Type: "notes", Colors: []string{"#fff"}}}, f.Palettes)
}

func TestGlobalConfigDefaults(t *testing.T) {
	var nilCfg *GlobalConfig
	assert.Equal(t, ElementStroke, nilCfg.GetDefaultType())
	assert.Equal(t, "Color", nilCfg.GetLabel())

	cfg := &GlobalConfig{DefaultType: "canvasBackground", Label: "Fill"}
	assert.Equal(t, CanvasBackground, cfg.GetDefaultType())
	assert.Equal(t, "Fill", cfg.GetLabel())
}
