package cli

import (
	"fmt"
	"os"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/ra"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create the global config and a palette file")

	ctx.InitProject, _ = ra.NewBool("project").
		SetShort("p").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Create .swatch/palettes.toml in the current directory instead of the global one").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(project bool) {
	var paths *config.Paths
	if project {
		cwd, err := os.Getwd()
		if err != nil {
			Fatal(fmt.Errorf("failed to get working directory: %w", err))
		}
		paths = config.NewProjectPaths(cwd)
	} else {
		dir := config.GlobalConfigDirPath()
		if dir == "" {
			Fatal(fmt.Errorf("could not determine home directory"))
		}
		paths = config.NewPaths(dir)
	}

	globalStore := store.NewGlobalStore()
	globalCfg, err := globalStore.Load()
	if err != nil {
		Fatal(err)
	}
	app := newAppAt(globalStore, globalCfg, paths, "", false)

	created, err := app.InitService.Initialize()
	if err != nil {
		Fatal(err)
	}

	if !created {
		PrintInfo("Palettes already exist at %s", app.PaletteStore.Path())
		return
	}
	PrintSuccess("Created %s", app.PaletteStore.Path())
}
