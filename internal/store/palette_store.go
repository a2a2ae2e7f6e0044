package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// FilePaletteStore implements PaletteStore using a toml file.
type FilePaletteStore struct {
	paths *config.Paths
}

// NewPaletteStore creates a new palette store.
func NewPaletteStore(paths *config.Paths) *FilePaletteStore {
	return &FilePaletteStore{paths: paths}
}

// Path returns the palette file location.
func (s *FilePaletteStore) Path() string {
	return s.paths.PaletteFilePath()
}

// Exists returns true if the palette file is present.
func (s *FilePaletteStore) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Load reads the palette file. A missing file yields an empty document so
// built-in palettes still apply.
func (s *FilePaletteStore) Load() (*model.PaletteFile, error) {
	path := s.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.PaletteFile{SwatchSchema: version.CurrentPaletteSchema()}, nil
		}
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	var file model.PaletteFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid palette file: %w", err)
	}

	// Strict version validation
	if file.SwatchSchema == "" {
		return nil, version.MissingPaletteSchema(path)
	}
	if file.SwatchSchema != version.CurrentPaletteSchema() {
		return nil, version.InvalidPaletteSchema(path, file.SwatchSchema)
	}

	return &file, nil
}

// Save writes the palette file atomically (temp file + rename) so watchers
// never observe a half-written document.
func (s *FilePaletteStore) Save(file *model.PaletteFile) error {
	file.SwatchSchema = version.CurrentPaletteSchema()

	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create palette directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		return fmt.Errorf("failed to encode palette file: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}
