package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/amterp/swatch/internal/model"
)

// Editor handles editor resolution and invocation.
type Editor struct {
	globalConfig *model.GlobalConfig
}

// NewEditor creates a new Editor.
func NewEditor(globalConfig *model.GlobalConfig) *Editor {
	return &Editor{globalConfig: globalConfig}
}

// Resolve returns the editor command to use.
// Order: global config > $EDITOR > vim
func (e *Editor) Resolve() string {
	if e.globalConfig != nil && e.globalConfig.Editor != "" {
		return e.globalConfig.Editor
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	return "vim"
}

// EditColors opens the editor with one color per line and returns the
// non-empty, non-comment lines after the editor exits.
func (e *Editor) EditColors(header string, colors []string) ([]string, error) {
	var b strings.Builder
	for _, line := range strings.Split(header, "\n") {
		b.WriteString("# " + line + "\n")
	}
	for _, c := range colors {
		b.WriteString(c + "\n")
	}

	edited, err := e.Edit(b.String())
	if err != nil {
		return nil, err
	}
	return ParseColorLines(edited), nil
}

// Edit opens the editor with the given content and returns the edited content.
func (e *Editor) Edit(content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "swatch-palette-*.txt")
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", err
	}
	tmpFile.Close()

	// Editor strings like "code --wait" carry arguments.
	parts := strings.Fields(e.Resolve())
	cmd := exec.Command(parts[0], append(parts[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", err
	}

	return string(edited), nil
}

// ParseColorLines splits text into color entries, skipping blank lines and
// '#' comments. A line that is a bare hex color with '#' is kept.
func ParseColorLines(text string) []string {
	var colors []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "# ") || line == "#" {
			continue
		}
		colors = append(colors, line)
	}
	return colors
}
