package store

import "github.com/amterp/swatch/internal/model"

// PaletteStore handles palette file persistence.
type PaletteStore interface {
	Load() (*model.PaletteFile, error)
	Save(file *model.PaletteFile) error
	Exists() bool
	Path() string
}

// GlobalStore handles global config persistence.
type GlobalStore interface {
	Load() (*model.GlobalConfig, error)
	Save(config *model.GlobalConfig) error
	EnsureExists() error
}
