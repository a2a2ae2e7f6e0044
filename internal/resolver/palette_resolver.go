package resolver

import (
	"fmt"

	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/store"
)

// PaletteSource lists and names palette types. Satisfied by
// service.PaletteService.
type PaletteSource interface {
	Types() ([]model.PaletteType, error)
	ResolveType(name string) (model.PaletteType, error)
}

// PaletteResolver handles palette selection logic.
type PaletteResolver struct {
	palettes    PaletteSource
	globalStore store.GlobalStore
	prompter    prompt.Prompter
}

// NewPaletteResolver creates a new palette resolver.
func NewPaletteResolver(
	palettes PaletteSource,
	globalStore store.GlobalStore,
	prompter prompt.Prompter,
) *PaletteResolver {
	return &PaletteResolver{
		palettes:    palettes,
		globalStore: globalStore,
		prompter:    prompter,
	}
}

// Resolve determines which palette type to use:
// 1. If an explicit name is provided, use it (new names become custom types)
// 2. If useDefault and the configured default_type exists, use it
// 3. If interactive, prompt user
// 4. Otherwise, fail with error
func (r *PaletteResolver) Resolve(explicit string, useDefault, interactive bool) (model.PaletteType, error) {
	// 1. Explicit name
	if explicit != "" {
		return r.palettes.ResolveType(explicit)
	}

	types, err := r.palettes.Types()
	if err != nil {
		return "", err
	}

	// 2. Configured default
	if useDefault {
		globalCfg, _ := r.globalStore.Load()
		def := globalCfg.GetDefaultType()
		for _, t := range types {
			if t == def {
				return t, nil
			}
		}
	}

	// 3. No way to ask
	if !interactive {
		return "", fmt.Errorf("no palette type given; pass one of %s", joinTypes(types))
	}

	// 4. Prompt user
	options := make([]string, len(types))
	for i, t := range types {
		options[i] = string(t)
	}
	choice, err := r.prompter.Select("Select palette", options)
	if err != nil {
		return "", err
	}
	return model.PaletteType(choice), nil
}

func joinTypes(types []model.PaletteType) string {
	s := ""
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += string(t)
	}
	return s
}
