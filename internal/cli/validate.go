package cli

import (
	"fmt"
	"os"

	"github.com/amterp/swatch/internal/colorinput"
	"github.com/amterp/ra"
)

func registerValidate(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("validate")
	cmd.SetDescription("Check whether a value is a color and print its canonical form")

	ctx.ValidateValue, _ = ra.NewString("value").
		SetUsage("Hex color (3, 6 or 8 digits, '#' optional) or 'transparent'").
		Register(cmd)

	ctx.ValidateJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.ValidateUsed, _ = parent.RegisterCmd(cmd)
}

func validateValue(value string) ValidateOutput {
	color, ok := colorinput.Normalize(value)
	return ValidateOutput{Value: value, Valid: ok, Color: color}
}

// runValidate exits 1 when the value isn't a color, with or without --json.
func runValidate(value string, jsonOutput bool) {
	out := validateValue(value)

	if jsonOutput {
		if err := printJson(out); err != nil {
			Fatal(err)
		}
	} else if out.Valid {
		fmt.Printf("%s %s\n", ColorSwatch(out.Color), out.Color)
	} else {
		PrintError("%q is not a color", value)
	}

	if !out.Valid {
		os.Exit(1)
	}
}
