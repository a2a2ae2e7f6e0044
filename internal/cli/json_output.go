package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/swatch/internal/keybind"
	"github.com/amterp/swatch/internal/picker"
	"github.com/amterp/swatch/internal/service"
)

// PaletteJson is a resolved palette with per-swatch metadata.
type PaletteJson struct {
	*service.PaletteView
	Swatches []picker.SwatchInfo `json:"swatches"`
}

func paletteToJson(v *service.PaletteView) PaletteJson {
	grid := picker.NewGrid(nil, picker.GridOptions{Colors: v.Colors})
	return PaletteJson{PaletteView: v, Swatches: grid.Swatches()}
}

// PaletteOutput wraps a single palette for JSON output.
type PaletteOutput struct {
	Palette PaletteJson `json:"palette"`
}

// NewPaletteOutput creates a PaletteOutput from a resolved palette.
func NewPaletteOutput(v *service.PaletteView) PaletteOutput {
	return PaletteOutput{Palette: paletteToJson(v)}
}

// PalettesOutput wraps every palette and the file they came from.
type PalettesOutput struct {
	Path     string        `json:"path"`
	Palettes []PaletteJson `json:"palettes"`
}

// NewPalettesOutput creates a PalettesOutput.
// Always returns an empty array (not null) when there are no palettes.
func NewPalettesOutput(path string, views []*service.PaletteView) PalettesOutput {
	result := make([]PaletteJson, 0, len(views))
	for _, v := range views {
		result = append(result, paletteToJson(v))
	}
	return PalettesOutput{Path: path, Palettes: result}
}

// KeysOutput describes the quick-select layout.
type KeysOutput struct {
	RowWidth int        `json:"row_width"`
	Keys     []string   `json:"keys"`
	Rows     [][]string `json:"rows"`
}

// NewKeysOutput creates a KeysOutput from the key binding layout.
func NewKeysOutput() KeysOutput {
	keys := keybind.Keys()
	var rows [][]string
	for start := 0; start < len(keys); start += keybind.RowWidth {
		end := min(start+keybind.RowWidth, len(keys))
		rows = append(rows, keys[start:end])
	}
	return KeysOutput{RowWidth: keybind.RowWidth, Keys: keys, Rows: rows}
}

// ValidateOutput reports whether a value is a color.
type ValidateOutput struct {
	Value string `json:"value"`
	Valid bool   `json:"valid"`
	Color string `json:"color,omitempty"`
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
