package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/ra"
)

func registerKeys(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("keys")
	cmd.SetDescription("Show the quick-select key layout")

	ctx.KeysJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.KeysUsed, _ = parent.RegisterCmd(cmd)
}

func runKeys(jsonOutput bool) {
	out := NewKeysOutput()
	if jsonOutput {
		if err := printJson(out); err != nil {
			Fatal(err)
		}
		return
	}

	rows := make([]string, len(out.Rows))
	for i, row := range out.Rows {
		cells := make([]string, len(row))
		for j, k := range row {
			cells[j] = RenderKey(k)
		}
		rows[i] = strings.Join(cells, " ")
	}
	fmt.Println(Box(strings.Join(rows, "\n")))
	fmt.Println(RenderMuted("Press a key while the palette is open to pick that swatch."))
}
