package model

// GlobalConfig represents the user's global swatch configuration.
// Stored at ~/.config/swatch/config.toml
// Schema changes require a version bump; see internal/version/version.go.
type GlobalConfig struct {
	SwatchSchema string `toml:"swatch_schema"`
	Editor       string `toml:"editor,omitempty"`
	Locale       string `toml:"locale,omitempty"`       // overrides LANG for text direction
	DefaultType  string `toml:"default_type,omitempty"` // palette used when --type is omitted
	Label        string `toml:"label,omitempty"`
}

// GetDefaultType returns the configured default palette type, falling back
// to element stroke colors.
func (g *GlobalConfig) GetDefaultType() PaletteType {
	if g != nil && g.DefaultType != "" {
		return PaletteType(g.DefaultType)
	}
	return ElementStroke
}

// GetLabel returns the configured picker label.
func (g *GlobalConfig) GetLabel() string {
	if g != nil && g.Label != "" {
		return g.Label
	}
	return "Color"
}
