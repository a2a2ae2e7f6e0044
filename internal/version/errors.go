package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem during file read/write.
type SchemaVersionError struct {
	FileType    string // "config", "palette file"
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "palettes/2")
	Expected    string // What was expected (e.g., "palettes/1")
	MinRequired string // Minimum swatch version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"%s schema version %s requires swatch >= %s (file: %s, found: %s, supports up to: %s)",
			e.FileType, e.Found, e.MinRequired, e.FilePath, e.Found, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"%s has no schema version (file: %s). Add swatch_schema = %q.",
			e.FileType, e.FilePath, e.Expected,
		)
	}
	return fmt.Sprintf(
		"%s has invalid schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath,
	)
}

// MissingConfigSchema creates an error for a config file missing swatch_schema.
func MissingConfigSchema(path string) error {
	return &SchemaVersionError{
		FileType: "config",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentConfigSchema(),
	}
}

// InvalidConfigSchema creates an error for a config file with an unsupported schema.
func InvalidConfigSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "config",
		FilePath: path,
		Found:    found,
		Expected: CurrentConfigSchema(),
	}
	if v, err := ParseConfigVersion(found); err == nil && v > CurrentConfigVersion {
		e.MinRequired = minRequired(found)
	}
	return e
}

// MissingPaletteSchema creates an error for a palette file missing swatch_schema.
func MissingPaletteSchema(path string) error {
	return &SchemaVersionError{
		FileType: "palette file",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentPaletteSchema(),
	}
}

// InvalidPaletteSchema creates an error for a palette file with an unsupported schema.
func InvalidPaletteSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "palette file",
		FilePath: path,
		Found:    found,
		Expected: CurrentPaletteSchema(),
	}
	if v, err := ParsePaletteVersion(found); err == nil && v > CurrentPaletteVersion {
		e.MinRequired = minRequired(found)
	}
	return e
}

func minRequired(schema string) string {
	if v, ok := MinSwatchVersion[schema]; ok {
		return v
	}
	return "a newer version"
}
