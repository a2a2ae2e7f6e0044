package service

import (
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
)

// testPaletteStore keeps the palette document in memory.
type testPaletteStore struct {
	file  *model.PaletteFile
	saves int
}

var _ store.PaletteStore = (*testPaletteStore)(nil)

func newTestPaletteStore() *testPaletteStore {
	return &testPaletteStore{}
}

func (s *testPaletteStore) Load() (*model.PaletteFile, error) {
	if s.file == nil {
		return &model.PaletteFile{}, nil
	}
	// Copy so callers must Save to persist.
	cp := &model.PaletteFile{SwatchSchema: s.file.SwatchSchema}
	for _, p := range s.file.Palettes {
		cp.Palettes = append(cp.Palettes, model.Palette{Type: p.Type, Colors: append([]string{}, p.Colors...)})
	}
	return cp, nil
}

func (s *testPaletteStore) Save(file *model.PaletteFile) error {
	s.file = file
	s.saves++
	return nil
}

func (s *testPaletteStore) Exists() bool { return s.file != nil }

func (s *testPaletteStore) Path() string { return "memory://palettes.toml" }

type testGlobalStore struct {
	cfg     *model.GlobalConfig
	ensured int
}

var _ store.GlobalStore = (*testGlobalStore)(nil)

func (s *testGlobalStore) Load() (*model.GlobalConfig, error) {
	if s.cfg == nil {
		return &model.GlobalConfig{}, nil
	}
	return s.cfg, nil
}

func (s *testGlobalStore) Save(cfg *model.GlobalConfig) error {
	s.cfg = cfg
	return nil
}

func (s *testGlobalStore) EnsureExists() error {
	s.ensured++
	if s.cfg == nil {
		s.cfg = &model.GlobalConfig{}
	}
	return nil
}
