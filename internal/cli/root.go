package cli

import (
	"os"

	"github.com/amterp/swatch/internal/log"
	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Verbose        *bool

	// init command
	InitUsed    *bool
	InitProject *bool

	// pick command
	PickUsed   *bool
	PickType   *string
	PickColor  *string
	PickLabel  *string
	PickLocale *string
	PickRTL    *bool
	PickCopy   *bool

	// keys command
	KeysUsed *bool
	KeysJson *bool

	// validate command
	ValidateUsed  *bool
	ValidateValue *string
	ValidateJson  *bool

	// palette command
	PaletteUsed *bool

	// palette list
	PaletteListUsed *bool
	PaletteListJson *bool

	// palette show
	PaletteShowUsed *bool
	PaletteShowType *string
	PaletteShowJson *bool

	// palette set
	PaletteSetUsed   *bool
	PaletteSetType   *string
	PaletteSetColors *string

	// palette reset
	PaletteResetUsed *bool
	PaletteResetType *string
	PaletteResetYes  *bool

	// palette edit
	PaletteEditUsed *bool
	PaletteEditType *string

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeLocale *string

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("swatch")
	cmd.SetDescription("Keyboard-driven color picker")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Verbose, _ = ra.NewBool("verbose").
		SetShort("v").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Write debug logs to stderr").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerPick(cmd, ctx)
	registerKeys(cmd, ctx)
	registerValidate(cmd, ctx)
	registerPalette(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	if err := log.Init(*ctx.Verbose); err != nil {
		Fatal(err)
	}
	defer log.Sync()

	// Execute the appropriate command
	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, root *ra.Cmd) {
	switch {
	case *ctx.InitUsed:
		runInit(*ctx.InitProject)

	case *ctx.PickUsed:
		runPick(pickArgs{
			paletteType: *ctx.PickType,
			color:       *ctx.PickColor,
			label:       *ctx.PickLabel,
			locale:      *ctx.PickLocale,
			rtl:         *ctx.PickRTL,
			copy:        *ctx.PickCopy,
		}, *ctx.NonInteractive)

	case *ctx.KeysUsed:
		runKeys(*ctx.KeysJson)

	case *ctx.ValidateUsed:
		runValidate(*ctx.ValidateValue, *ctx.ValidateJson)

	case *ctx.PaletteListUsed:
		runPaletteList(*ctx.PaletteListJson)

	case *ctx.PaletteShowUsed:
		runPaletteShow(*ctx.PaletteShowType, *ctx.PaletteShowJson, *ctx.NonInteractive)

	case *ctx.PaletteSetUsed:
		runPaletteSet(*ctx.PaletteSetType, *ctx.PaletteSetColors, *ctx.NonInteractive)

	case *ctx.PaletteResetUsed:
		runPaletteReset(*ctx.PaletteResetType, *ctx.PaletteResetYes, *ctx.NonInteractive)

	case *ctx.PaletteEditUsed:
		runPaletteEdit(*ctx.PaletteEditType, *ctx.NonInteractive)

	case *ctx.ServeUsed:
		runServe(*ctx.ServePort, *ctx.ServeLocale)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, root)
	}
}
