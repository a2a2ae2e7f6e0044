package service

import (
	"fmt"

	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
)

// InitService handles first-run setup.
type InitService struct {
	globalStore  store.GlobalStore
	paletteStore store.PaletteStore
}

// NewInitService creates a new init service.
func NewInitService(globalStore store.GlobalStore, paletteStore store.PaletteStore) *InitService {
	return &InitService{
		globalStore:  globalStore,
		paletteStore: paletteStore,
	}
}

// Initialize creates the global config and a palette file seeded with the
// built-in palettes. Returns false if the palette file already existed.
func (s *InitService) Initialize() (bool, error) {
	if err := s.globalStore.EnsureExists(); err != nil {
		return false, fmt.Errorf("failed to create global config: %w", err)
	}

	if s.paletteStore.Exists() {
		return false, nil
	}

	file := &model.PaletteFile{}
	for _, t := range model.BuiltinTypes {
		colors, _ := model.DefaultPalette(t)
		file.Set(t, colors)
	}
	if err := s.paletteStore.Save(file); err != nil {
		return false, fmt.Errorf("failed to create palette file: %w", err)
	}
	return true, nil
}
