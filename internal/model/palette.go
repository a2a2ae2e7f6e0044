package model

// PaletteType tags which kind of color a palette offers, e.g. stroke or fill.
type PaletteType string

const (
	CanvasBackground  PaletteType = "canvasBackground"
	ElementBackground PaletteType = "elementBackground"
	ElementStroke     PaletteType = "elementStroke"
)

// BuiltinTypes lists the palette types that always exist, in display order.
var BuiltinTypes = []PaletteType{CanvasBackground, ElementBackground, ElementStroke}

// IsBuiltin returns true for the palette types shipped with swatch.
func (t PaletteType) IsBuiltin() bool {
	_, ok := defaultPalettes[t]
	return ok
}

// Built-in palettes, three rows of five. Hues follow open-color order:
// red, pink, grape, violet, indigo, blue, cyan, teal, green, lime, yellow, orange.
var defaultPalettes = map[PaletteType][]string{
	CanvasBackground: {
		"#ffffff", "#f8f9fa", "#f1f3f5", "#fff5f5", "#fff0f6",
		"#f8f0fc", "#f3f0ff", "#edf2ff", "#e7f5ff", "#e3fafc",
		"#e6fcf5", "#ebfbee", "#f4fce3", "#fff9db", "#fff4e6",
	},
	ElementBackground: {
		"transparent", "#ced4da", "#868e96", "#fa5252", "#e64980",
		"#be4bdb", "#7950f2", "#4c6ef5", "#228be6", "#15aabf",
		"#12b886", "#40c057", "#82c91e", "#fab005", "#fd7e14",
	},
	ElementStroke: {
		"#000000", "#343a40", "#495057", "#c92a2a", "#a61e4d",
		"#862e9c", "#5f3dc4", "#364fc7", "#1864ab", "#0b7285",
		"#087f5b", "#2b8a3e", "#5c940d", "#e67700", "#d9480f",
	},
}

// DefaultPalette returns a copy of the built-in palette for t.
func DefaultPalette(t PaletteType) ([]string, bool) {
	colors, ok := defaultPalettes[t]
	if !ok {
		return nil, false
	}
	out := make([]string, len(colors))
	copy(out, colors)
	return out, true
}

// Palette is a named, ordered list of canonical colors.
type Palette struct {
	Type   PaletteType `toml:"type" json:"type"`
	Colors []string    `toml:"colors" json:"colors"`
}

// PaletteFile is the on-disk palette document (palettes.toml). Entries
// override built-in palettes of the same type or add new types.
type PaletteFile struct {
	SwatchSchema string    `toml:"swatch_schema" json:"swatch_schema"`
	Palettes     []Palette `toml:"palettes,omitempty" json:"palettes,omitempty"`
}

// Get returns the palette for t, or nil.
func (f *PaletteFile) Get(t PaletteType) *Palette {
	for i := range f.Palettes {
		if f.Palettes[i].Type == t {
			return &f.Palettes[i]
		}
	}
	return nil
}

// Set replaces or appends the palette for t.
func (f *PaletteFile) Set(t PaletteType, colors []string) {
	if p := f.Get(t); p != nil {
		p.Colors = colors
		return
	}
	f.Palettes = append(f.Palettes, Palette{Type: t, Colors: colors})
}

// Remove deletes the palette for t. Returns false if it wasn't present.
func (f *PaletteFile) Remove(t PaletteType) bool {
	for i, p := range f.Palettes {
		if p.Type == t {
			f.Palettes = append(f.Palettes[:i], f.Palettes[i+1:]...)
			return true
		}
	}
	return false
}
