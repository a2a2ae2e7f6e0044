package api

import (
	"fmt"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/store"
)

// Context bundles the dependencies the HTTP handlers and sessions share.
type Context struct {
	Paths          *config.Paths
	PaletteStore   store.PaletteStore
	PaletteService *service.PaletteService
	Config         *model.GlobalConfig
	RTL            bool // default text direction for new sessions
}

// BuildContext wires stores and services for the palette data directory.
//
// This is a pure construction function: nothing is written to disk.
func BuildContext(dataDir string, cfg *model.GlobalConfig, rtl bool) (*Context, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("palette directory is required")
	}
	if cfg == nil {
		cfg = &model.GlobalConfig{}
	}

	paths := config.NewPaths(dataDir)
	paletteStore := store.NewPaletteStore(paths)

	return &Context{
		Paths:          paths,
		PaletteStore:   paletteStore,
		PaletteService: service.NewPaletteService(paletteStore),
		Config:         cfg,
		RTL:            rtl,
	}, nil
}
