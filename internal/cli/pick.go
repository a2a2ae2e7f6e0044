package cli

import (
	"fmt"

	"github.com/amterp/swatch/internal/colorinput"
	swatcherr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/log"
	"github.com/amterp/swatch/internal/tui"
	"github.com/amterp/ra"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

func registerPick(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("pick")
	cmd.SetDescription("Pick a color in the terminal and print it")

	ctx.PickType, _ = ra.NewString("type").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Palette to show (default: config default_type)").
		SetCompletionFunc(completePaletteTypes).
		Register(cmd)

	ctx.PickColor, _ = ra.NewString("color").
		SetShort("c").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Starting color").
		Register(cmd)

	ctx.PickLabel, _ = ra.NewString("label").
		SetShort("l").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Label shown on the trigger (default: config label)").
		Register(cmd)

	ctx.PickLocale, _ = ra.NewString("locale").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Locale deciding text direction (default: config, then LANG)").
		Register(cmd)

	ctx.PickRTL, _ = ra.NewBool("rtl").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Lay the grid out right to left").
		Register(cmd)

	ctx.PickCopy, _ = ra.NewBool("copy").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Also copy the chosen color to the clipboard").
		Register(cmd)

	ctx.PickUsed, _ = parent.RegisterCmd(cmd)
}

type pickArgs struct {
	paletteType string
	color       string
	label       string
	locale      string
	rtl         bool
	copy        bool
}

func runPick(args pickArgs, nonInteractive bool) {
	if nonInteractive {
		Fatal(fmt.Errorf("pick needs a terminal; remove --non-interactive"))
	}

	app, err := NewApp(true)
	if err != nil {
		Fatal(err)
	}

	paletteType, err := app.Resolver.Resolve(args.paletteType, true, app.Interactive)
	if err != nil {
		Fatal(err)
	}
	palette, err := app.PaletteService.Get(paletteType)
	if err != nil {
		Fatal(err)
	}

	color := ""
	if args.color != "" {
		c, ok := colorinput.Normalize(args.color)
		if !ok {
			Fatal(swatcherr.InvalidColor(args.color))
		}
		color = c
	}

	label := args.label
	if label == "" {
		label = app.GlobalConfig.GetLabel()
	}

	rtl := app.RightToLeft(args.rtl, args.locale)
	log.Debug("starting picker",
		zap.String("type", string(palette.Type)),
		zap.Int("colors", len(palette.Colors)),
		zap.Bool("rtl", rtl))

	outcome, err := tui.Run(tui.Options{
		Palette: string(palette.Type),
		Colors:  palette.Colors,
		Color:   color,
		Label:   label,
		RTL:     rtl,
	})
	if err != nil {
		Fatal(err)
	}

	if !outcome.Accepted || outcome.Color == "" {
		// Nothing chosen; exit quietly so scripts can test for empty output.
		return
	}

	fmt.Println(outcome.Color)
	if args.copy {
		if err := clipboard.WriteAll(outcome.Color); err != nil {
			PrintWarning("failed to copy to clipboard: %v", err)
		}
	}
}
