package service

import (
	"fmt"
	"strings"

	"github.com/amterp/swatch/internal/colorinput"
	swatcherr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/keybind"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/util"
)

// PaletteView is a resolved palette: the file's override when present,
// otherwise the built-in default.
type PaletteView struct {
	Type       model.PaletteType `json:"type"`
	Colors     []string          `json:"colors"`
	Builtin    bool              `json:"builtin"`
	Overridden bool              `json:"overridden"`
}

// PaletteService handles palette operations.
type PaletteService struct {
	paletteStore store.PaletteStore
}

// NewPaletteService creates a new palette service.
func NewPaletteService(paletteStore store.PaletteStore) *PaletteService {
	return &PaletteService{paletteStore: paletteStore}
}

// Path returns the palette file backing this service.
func (s *PaletteService) Path() string {
	return s.paletteStore.Path()
}

// Types returns built-in types followed by custom types in file order.
func (s *PaletteService) Types() ([]model.PaletteType, error) {
	file, err := s.paletteStore.Load()
	if err != nil {
		return nil, err
	}

	types := append([]model.PaletteType{}, model.BuiltinTypes...)
	for _, p := range file.Palettes {
		if !p.Type.IsBuiltin() {
			types = append(types, p.Type)
		}
	}
	return types, nil
}

// List returns every resolved palette.
func (s *PaletteService) List() ([]*PaletteView, error) {
	file, err := s.paletteStore.Load()
	if err != nil {
		return nil, err
	}

	var views []*PaletteView
	for _, t := range model.BuiltinTypes {
		view, err := s.resolve(file, t)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	for _, p := range file.Palettes {
		if p.Type.IsBuiltin() {
			continue
		}
		view, err := s.resolve(file, p.Type)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns the resolved palette for t.
func (s *PaletteService) Get(t model.PaletteType) (*PaletteView, error) {
	file, err := s.paletteStore.Load()
	if err != nil {
		return nil, err
	}

	view, err := s.resolve(file, t)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, swatcherr.PaletteNotFound(string(t))
	}
	return view, nil
}

// ResolveType maps user input to a palette type. Built-in and existing
// custom names match case-insensitively; anything else is slugged into a
// new custom name.
func (s *PaletteService) ResolveType(name string) (model.PaletteType, error) {
	for _, t := range model.BuiltinTypes {
		if strings.EqualFold(name, string(t)) {
			return t, nil
		}
	}

	file, err := s.paletteStore.Load()
	if err != nil {
		return "", err
	}
	for _, p := range file.Palettes {
		if strings.EqualFold(name, string(p.Type)) {
			return p.Type, nil
		}
	}

	slug := util.CamelSlug(name)
	if slug == "" {
		return "", swatcherr.InvalidField("palette type", "must contain letters or digits")
	}
	return model.PaletteType(slug), nil
}

// Set validates and stores colors for t. Colors are normalized to canonical
// form; duplicates and palettes longer than the quick-select layout are
// rejected. Returns the stored colors.
func (s *PaletteService) Set(t model.PaletteType, colors []string) ([]string, error) {
	normalized, err := NormalizePalette(string(t), colors)
	if err != nil {
		return nil, err
	}

	file, err := s.paletteStore.Load()
	if err != nil {
		return nil, err
	}
	file.Set(t, normalized)
	if err := s.paletteStore.Save(file); err != nil {
		return nil, err
	}
	return normalized, nil
}

// Reset removes the stored palette for t. Built-in types fall back to their
// defaults; custom types are deleted.
func (s *PaletteService) Reset(t model.PaletteType) error {
	file, err := s.paletteStore.Load()
	if err != nil {
		return err
	}

	if !file.Remove(t) {
		if t.IsBuiltin() {
			return nil
		}
		return swatcherr.PaletteNotFound(string(t))
	}
	return s.paletteStore.Save(file)
}

// NormalizePalette canonicalizes every color of a palette and enforces the
// palette constraints.
func NormalizePalette(name string, colors []string) ([]string, error) {
	if len(colors) == 0 {
		return nil, swatcherr.InvalidField("colors", "palette must have at least one color")
	}
	if len(colors) > keybind.Len() {
		return nil, swatcherr.PaletteTooLong(name, len(colors), keybind.Len())
	}

	seen := make(map[string]bool, len(colors))
	normalized := make([]string, 0, len(colors))
	for _, raw := range colors {
		c, ok := colorinput.Normalize(strings.TrimSpace(raw))
		if !ok {
			return nil, swatcherr.InvalidColor(raw)
		}
		if seen[c] {
			return nil, swatcherr.InvalidField("colors", fmt.Sprintf("duplicate color %s", c))
		}
		seen[c] = true
		normalized = append(normalized, c)
	}
	return normalized, nil
}

// resolve returns nil when t is neither stored nor built in. Stored colors
// go through NormalizePalette since the file may have been edited by hand.
func (s *PaletteService) resolve(file *model.PaletteFile, t model.PaletteType) (*PaletteView, error) {
	if p := file.Get(t); p != nil {
		colors, err := NormalizePalette(string(t), p.Colors)
		if err != nil {
			return nil, fmt.Errorf("palette %s in %s: %w", t, s.paletteStore.Path(), err)
		}
		return &PaletteView{
			Type:       t,
			Colors:     colors,
			Builtin:    t.IsBuiltin(),
			Overridden: true,
		}, nil
	}
	if colors, ok := model.DefaultPalette(t); ok {
		return &PaletteView{Type: t, Colors: colors, Builtin: true}, nil
	}
	return nil, nil
}
