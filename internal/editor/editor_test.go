package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/amterp/swatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	assert.Equal(t, "hx", NewEditor(&model.GlobalConfig{Editor: "hx"}).Resolve())
	assert.Equal(t, "nano", NewEditor(&model.GlobalConfig{}).Resolve())
	assert.Equal(t, "nano", NewEditor(nil).Resolve())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "vim", NewEditor(nil).Resolve())
}

func TestParseColorLines(t *testing.T) {
	text := "# Palette: elementStroke\n#\n#000000\n\n  fff  \n# comment\ntransparent\n"
	assert.Equal(t, []string{"#000000", "fff", "transparent"}, ParseColorLines(text))
}

func TestEditColors_UsesConfiguredEditor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script editor")
	}

	// Fake editor appends a color to the file it is given.
	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho '#123456' >> \"$1\"\n"), 0755))

	e := NewEditor(&model.GlobalConfig{Editor: script})
	colors, err := e.EditColors("Palette: brand\nOne color per line", []string{"#abcdef"})
	require.NoError(t, err)
	assert.Equal(t, []string{"#abcdef", "#123456"}, colors)
}
