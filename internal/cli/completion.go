package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amterp/swatch/internal/discovery"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/ra"
)

// completionCtx provides lightweight palette access for shell completion.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so we can't use the full App.
type completionCtx struct {
	once     sync.Once
	palettes *service.PaletteService
	err      error
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		result, err := discovery.DiscoverPalettes()
		if err != nil || result == nil {
			compCtx.err = fmt.Errorf("no palettes found")
			return
		}
		compCtx.palettes = service.NewPaletteService(store.NewPaletteStore(result.Paths()))
	})
}

// completePaletteTypes returns palette types matching the given prefix.
func completePaletteTypes(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()

	var types []model.PaletteType
	if compCtx.err == nil {
		types, _ = compCtx.palettes.Types()
	}
	if types == nil {
		// Broken or missing palette file: still offer the built-ins.
		types = model.BuiltinTypes
	}
	return matchTypes(types, toComplete), ra.CompletionDirectiveNoFileComp
}

// matchTypes filters types by a case-insensitive prefix.
func matchTypes(types []model.PaletteType, prefix string) []string {
	var result []string
	for _, t := range types {
		if strings.HasPrefix(strings.ToLower(string(t)), strings.ToLower(prefix)) {
			result = append(result, string(t))
		}
	}
	return result
}

// registerCompletion adds the "swatch completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
