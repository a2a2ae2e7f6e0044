package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema versions - bump these when making breaking changes.
//
// CHECKLIST when bumping a version:
//  1. Update the constant below
//  2. Add entry to MinSwatchVersion map (tested by TestMinSwatchVersionCompleteness)
//  3. Teach the matching store to read the previous version or fail clearly
const (
	CurrentConfigVersion  = 1
	CurrentPaletteVersion = 1
)

// Schema type prefixes for config files.
const (
	ConfigSchemaPrefix  = "config/"
	PaletteSchemaPrefix = "palettes/"
)

// MinSwatchVersion maps schema identifiers to the minimum swatch version required.
// Used to provide helpful upgrade messages when encountering newer schemas.
var MinSwatchVersion = map[string]string{
	"config/1":   "0.1.0",
	"palettes/1": "0.1.0",
}

// FormatConfigSchema creates a config schema string from a version number.
// Example: FormatConfigSchema(1) returns "config/1"
func FormatConfigSchema(v int) string {
	return fmt.Sprintf("%s%d", ConfigSchemaPrefix, v)
}

// FormatPaletteSchema creates a palette file schema string from a version number.
// Example: FormatPaletteSchema(1) returns "palettes/1"
func FormatPaletteSchema(v int) string {
	return fmt.Sprintf("%s%d", PaletteSchemaPrefix, v)
}

// ParseConfigVersion extracts the version number from a config schema string.
// Returns an error if the format is invalid.
func ParseConfigVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, ConfigSchemaPrefix, "config")
}

// ParsePaletteVersion extracts the version number from a palette schema string.
// Returns an error if the format is invalid.
func ParsePaletteVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, PaletteSchemaPrefix, "palettes")
}

func parseSchemaVersion(schema, prefix, schemaType string) (int, error) {
	if !strings.HasPrefix(schema, prefix) {
		return 0, fmt.Errorf("invalid %s schema format: %q (expected %sN)", schemaType, schema, prefix)
	}
	versionStr := strings.TrimPrefix(schema, prefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s schema version: %q", schemaType, versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s schema version: %d (must be >= 1)", schemaType, v)
	}
	return v, nil
}

// CurrentConfigSchema returns the current config schema string.
func CurrentConfigSchema() string {
	return FormatConfigSchema(CurrentConfigVersion)
}

// CurrentPaletteSchema returns the current palette file schema string.
func CurrentPaletteSchema() string {
	return FormatPaletteSchema(CurrentPaletteVersion)
}
