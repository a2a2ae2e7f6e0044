package version

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatConfigSchema(t *testing.T) {
	tests := []struct {
		version  int
		expected string
	}{
		{1, "config/1"},
		{2, "config/2"},
		{10, "config/10"},
	}
	for _, tt := range tests {
		got := FormatConfigSchema(tt.version)
		if got != tt.expected {
			t.Errorf("FormatConfigSchema(%d) = %q, want %q", tt.version, got, tt.expected)
		}
	}
}

func TestFormatPaletteSchema(t *testing.T) {
	tests := []struct {
		version  int
		expected string
	}{
		{1, "palettes/1"},
		{3, "palettes/3"},
	}
	for _, tt := range tests {
		got := FormatPaletteSchema(tt.version)
		if got != tt.expected {
			t.Errorf("FormatPaletteSchema(%d) = %q, want %q", tt.version, got, tt.expected)
		}
	}
}

func TestParsePaletteVersion(t *testing.T) {
	tests := []struct {
		schema    string
		expected  int
		expectErr bool
	}{
		{"palettes/1", 1, false},
		{"palettes/2", 2, false},
		{"palettes/10", 10, false},
		{"config/1", 0, true},     // Wrong prefix
		{"palettes/", 0, true},    // Missing version
		{"palettes/abc", 0, true}, // Invalid version
		{"palettes/0", 0, true},   // Version must be >= 1
		{"palettes/-1", 0, true},  // Negative version
		{"", 0, true},             // Empty
		{"1", 0, true},            // No prefix
	}
	for _, tt := range tests {
		got, err := ParsePaletteVersion(tt.schema)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParsePaletteVersion(%q) expected error, got %d", tt.schema, got)
			}
		} else {
			if err != nil {
				t.Errorf("ParsePaletteVersion(%q) unexpected error: %v", tt.schema, err)
			} else if got != tt.expected {
				t.Errorf("ParsePaletteVersion(%q) = %d, want %d", tt.schema, got, tt.expected)
			}
		}
	}
}

func TestParseConfigVersion(t *testing.T) {
	tests := []struct {
		schema    string
		expected  int
		expectErr bool
	}{
		{"config/1", 1, false},
		{"config/2", 2, false},
		{"palettes/1", 0, true}, // Wrong prefix
		{"config/", 0, true},    // Missing version
		{"config/0", 0, true},   // Version must be >= 1
	}
	for _, tt := range tests {
		got, err := ParseConfigVersion(tt.schema)
		if tt.expectErr {
			if err == nil {
				t.Errorf("ParseConfigVersion(%q) expected error, got %d", tt.schema, got)
			}
		} else {
			if err != nil {
				t.Errorf("ParseConfigVersion(%q) unexpected error: %v", tt.schema, err)
			} else if got != tt.expected {
				t.Errorf("ParseConfigVersion(%q) = %d, want %d", tt.schema, got, tt.expected)
			}
		}
	}
}

func TestCurrentSchemas(t *testing.T) {
	if got := CurrentConfigSchema(); got != "config/1" {
		t.Errorf("CurrentConfigSchema() = %q, want %q", got, "config/1")
	}
	if got := CurrentPaletteSchema(); got != "palettes/1" {
		t.Errorf("CurrentPaletteSchema() = %q, want %q", got, "palettes/1")
	}
}

func TestSchemaVersionError(t *testing.T) {
	err := MissingPaletteSchema("/path/to/palettes.toml")
	if !strings.Contains(err.Error(), "no schema version") {
		t.Errorf("unexpected message: %s", err)
	}

	err = InvalidPaletteSchema("/path/to/palettes.toml", "palettes/9")
	if !strings.Contains(err.Error(), "requires swatch >= a newer version") {
		t.Errorf("future schema should ask for an upgrade: %s", err)
	}

	err = InvalidConfigSchema("/path/to/config.toml", "bogus")
	if !strings.Contains(err.Error(), "invalid schema version") {
		t.Errorf("unexpected message: %s", err)
	}
}

// TestMinSwatchVersionCompleteness ensures all current schema versions have
// corresponding entries in MinSwatchVersion.
func TestMinSwatchVersionCompleteness(t *testing.T) {
	requiredKeys := []string{
		fmt.Sprintf("config/%d", CurrentConfigVersion),
		fmt.Sprintf("palettes/%d", CurrentPaletteVersion),
	}

	for _, key := range requiredKeys {
		if _, ok := MinSwatchVersion[key]; !ok {
			t.Errorf("MinSwatchVersion missing entry for %q - update MinSwatchVersion when bumping schema versions", key)
		}
	}
}
