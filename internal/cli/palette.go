package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/swatch/internal/keybind"
	"github.com/amterp/swatch/internal/picker"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/util"
	"github.com/amterp/ra"
)

func registerPalette(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("palette")
	cmd.SetDescription("Manage palettes")

	// palette list
	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List all palettes")

	ctx.PaletteListJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(listCmd)

	ctx.PaletteListUsed, _ = cmd.RegisterCmd(listCmd)

	// palette show
	showCmd := ra.NewCmd("show")
	showCmd.SetDescription("Show a palette with its quick-select keys")

	ctx.PaletteShowType, _ = ra.NewString("type").
		SetOptional(true).
		SetUsage("Palette type (prompts if omitted)").
		SetCompletionFunc(completePaletteTypes).
		Register(showCmd)

	ctx.PaletteShowJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(showCmd)

	ctx.PaletteShowUsed, _ = cmd.RegisterCmd(showCmd)

	// palette set
	setCmd := ra.NewCmd("set")
	setCmd.SetDescription("Replace a palette's colors, or create a custom palette")

	ctx.PaletteSetType, _ = ra.NewString("type").
		SetUsage("Palette type; new names become custom palettes").
		SetCompletionFunc(completePaletteTypes).
		Register(setCmd)

	ctx.PaletteSetColors, _ = ra.NewString("colors").
		SetOptional(true).
		SetUsage("Colors separated by commas or spaces (prompts if omitted)").
		Register(setCmd)

	ctx.PaletteSetUsed, _ = cmd.RegisterCmd(setCmd)

	// palette reset
	resetCmd := ra.NewCmd("reset")
	resetCmd.SetDescription("Restore a built-in palette or delete a custom one")

	ctx.PaletteResetType, _ = ra.NewString("type").
		SetUsage("Palette type").
		SetCompletionFunc(completePaletteTypes).
		Register(resetCmd)

	ctx.PaletteResetYes, _ = ra.NewBool("yes").
		SetShort("y").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation").
		Register(resetCmd)

	ctx.PaletteResetUsed, _ = cmd.RegisterCmd(resetCmd)

	// palette edit
	editCmd := ra.NewCmd("edit")
	editCmd.SetDescription("Edit a palette's colors in your editor")

	ctx.PaletteEditType, _ = ra.NewString("type").
		SetOptional(true).
		SetUsage("Palette type (prompts if omitted)").
		SetCompletionFunc(completePaletteTypes).
		Register(editCmd)

	ctx.PaletteEditUsed, _ = cmd.RegisterCmd(editCmd)

	ctx.PaletteUsed, _ = parent.RegisterCmd(cmd)
}

func runPaletteList(jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	views, err := app.PaletteService.List()
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewPalettesOutput(app.PaletteService.Path(), views)); err != nil {
			Fatal(err)
		}
		return
	}

	source := app.PaletteService.Path()
	if info, err := os.Stat(source); err == nil {
		source = fmt.Sprintf("%s (modified %s)", source, util.FormatTime(info.ModTime()))
	} else {
		source = "built-in defaults"
	}
	fmt.Println(RenderMuted(source))

	for _, v := range views {
		strip := make([]string, len(v.Colors))
		for i, c := range v.Colors {
			strip[i] = ColorSwatch(c)
		}
		fmt.Printf("%s %s %s\n", strings.Join(strip, ""), RenderBold(string(v.Type)), RenderMuted(paletteTags(v)))
	}
}

func runPaletteShow(name string, jsonOutput, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	t, err := app.Resolver.Resolve(name, false, app.Interactive)
	if err != nil {
		Fatal(err)
	}
	view, err := app.PaletteService.Get(t)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewPaletteOutput(view)); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Println(RenderBold(string(view.Type)) + " " + RenderMuted(paletteTags(view)))
	fmt.Println(renderPalette(view))
}

func runPaletteSet(name, colors string, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	t, err := app.PaletteService.ResolveType(name)
	if err != nil {
		Fatal(err)
	}

	if colors == "" {
		colors, err = app.Prompter.Input("Colors for "+string(t), "", func(s string) error {
			_, err := service.NormalizePalette(string(t), parseColorList(s))
			return err
		})
		if err != nil {
			Fatal(err)
		}
	}

	stored, err := app.PaletteService.Set(t, parseColorList(colors))
	if err != nil {
		Fatal(err)
	}
	PrintSuccess("Saved %s (%d colors)", RenderBold(string(t)), len(stored))
}

func runPaletteReset(name string, yes, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	t, err := app.PaletteService.ResolveType(name)
	if err != nil {
		Fatal(err)
	}

	if !yes {
		action := "Delete custom palette " + string(t) + "?"
		if t.IsBuiltin() {
			action = "Restore " + string(t) + " to its default colors?"
		}
		ok, err := app.Prompter.Confirm(action, false)
		if err != nil {
			Fatal(err)
		}
		if !ok {
			PrintInfo("Cancelled")
			return
		}
	}

	if err := app.PaletteService.Reset(t); err != nil {
		Fatal(err)
	}
	if t.IsBuiltin() {
		PrintSuccess("Restored %s", RenderBold(string(t)))
	} else {
		PrintSuccess("Deleted %s", RenderBold(string(t)))
	}
}

func runPaletteEdit(name string, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}

	t, err := app.Resolver.Resolve(name, false, app.Interactive)
	if err != nil {
		Fatal(err)
	}
	view, err := app.PaletteService.Get(t)
	if err != nil {
		Fatal(err)
	}

	header := fmt.Sprintf("Palette %s: one color per line, at most %d.\nLines starting with '#' followed by a space are ignored.",
		t, keybind.Len())
	colors, err := app.Editor.EditColors(header, view.Colors)
	if err != nil {
		Fatal(fmt.Errorf("editor failed: %w", err))
	}
	if len(colors) == 0 {
		PrintInfo("No colors left; %s unchanged", string(t))
		return
	}

	stored, err := app.PaletteService.Set(t, colors)
	if err != nil {
		Fatal(err)
	}
	PrintSuccess("Saved %s (%d colors)", RenderBold(string(t)), len(stored))
}

// parseColorList splits user input on commas and whitespace.
func parseColorList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func paletteTags(v *service.PaletteView) string {
	switch {
	case v.Builtin && v.Overridden:
		return "(built-in, customized)"
	case v.Builtin:
		return "(built-in)"
	default:
		return "(custom)"
	}
}

// renderPalette lays swatches out in quick-select rows: block, key, color.
func renderPalette(v *service.PaletteView) string {
	swatches := picker.NewGrid(nil, picker.GridOptions{Colors: v.Colors}).Swatches()

	var lines []string
	for start := 0; start < len(swatches); start += keybind.RowWidth {
		end := min(start+keybind.RowWidth, len(swatches))
		cells := make([]string, 0, end-start)
		for _, s := range swatches[start:end] {
			key := s.Key
			if key == "" {
				key = " "
			}
			cells = append(cells, fmt.Sprintf("%s %s %-11s", ColorSwatch(s.Color), RenderKey(key), s.Color))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return strings.Join(lines, "\n")
}
