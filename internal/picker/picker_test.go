package picker

import (
	"testing"
)

// fakeHost records focus and popover commands.
type fakeHost struct {
	focused  Target
	focusLog []Target
	popover  bool
	shows    int
	hides    int
	removed  map[Target]bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{removed: make(map[Target]bool)}
}

func (h *fakeHost) Focus(t Target) bool {
	if h.removed[t] {
		return false
	}
	h.focused = t
	h.focusLog = append(h.focusLog, t)
	return true
}

func (h *fakeHost) Focused() Target { return h.focused }

func (h *fakeHost) ShowPopover() {
	h.popover = true
	h.shows++
}

func (h *fakeHost) HidePopover() {
	h.popover = false
	h.hides++
}

// changeLog collects onChange notifications.
type changeLog struct {
	colors []string
}

func (c *changeLog) add(color string) {
	c.colors = append(c.colors, color)
}

func (c *changeLog) last() string {
	if len(c.colors) == 0 {
		return ""
	}
	return c.colors[len(c.colors)-1]
}

func testPalette() []string {
	return []string{
		"transparent", "#ced4da", "#868e96", "#fa5252", "#e64980",
		"#be4bdb", "#7950f2", "#4c6ef5", "#228be6", "#15aabf",
		"#12b886", "#40c057", "#82c91e", "#fab005", "#fd7e14",
	}
}

func mustTarget(t *testing.T, s string) Target {
	t.Helper()
	target, err := ParseTarget(s)
	if err != nil {
		t.Fatalf("ParseTarget(%q): %v", s, err)
	}
	return target
}
