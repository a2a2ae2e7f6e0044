package cli

import (
	"fmt"
	"os"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/discovery"
	"github.com/amterp/swatch/internal/editor"
	swatcherr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/locale"
	"github.com/amterp/swatch/internal/log"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/store"
	"go.uber.org/zap"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	GlobalStore    store.GlobalStore
	GlobalConfig   *model.GlobalConfig
	Paths          *config.Paths
	PaletteStore   store.PaletteStore
	Prompter       prompt.Prompter
	Editor         *editor.Editor
	InitService    *service.InitService
	PaletteService *service.PaletteService
	Resolver       *resolver.PaletteResolver
	Interactive    bool
	ProjectRoot    string // empty when palettes come from the global directory
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	globalStore := store.NewGlobalStore()

	// Load global config with warnings (don't silently ignore errors)
	globalCfg, err := globalStore.Load()
	if err != nil {
		PrintWarning("failed to load global config: %v", err)
		globalCfg = &model.GlobalConfig{}
	}

	result, err := discovery.DiscoverPalettes()
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, &swatcherr.NotInitializedError{}
	}
	log.Debug("palettes discovered",
		zap.String("dir", result.DataDir),
		zap.Bool("global", result.Global))

	return newAppAt(globalStore, globalCfg, result.Paths(), result.ProjectRoot, interactive), nil
}

// newAppAt wires an App around an already-resolved palette directory.
func newAppAt(globalStore store.GlobalStore, globalCfg *model.GlobalConfig, paths *config.Paths, projectRoot string, interactive bool) *App {
	paletteStore := store.NewPaletteStore(paths)

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	paletteService := service.NewPaletteService(paletteStore)

	return &App{
		GlobalStore:    globalStore,
		GlobalConfig:   globalCfg,
		Paths:          paths,
		PaletteStore:   paletteStore,
		Prompter:       prompter,
		Editor:         editor.NewEditor(globalCfg),
		InitService:    service.NewInitService(globalStore, paletteStore),
		PaletteService: paletteService,
		Resolver:       resolver.NewPaletteResolver(paletteService, globalStore, prompter),
		Interactive:    interactive,
		ProjectRoot:    projectRoot,
	}
}

// RightToLeft decides text direction. An explicit flag wins, then the given
// locale, then the configured locale, then the environment.
func (a *App) RightToLeft(rtlFlag bool, localeFlag string) bool {
	if rtlFlag {
		return true
	}
	tag := localeFlag
	if tag == "" {
		tag = a.GlobalConfig.Locale
	}
	if tag == "" {
		tag = locale.FromEnv()
	}
	return locale.IsRightToLeft(tag)
}

// Fatal prints an error and exits.
func Fatal(err error) {
	log.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
