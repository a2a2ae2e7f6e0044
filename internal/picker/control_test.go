package picker

import (
	"testing"

	"github.com/amterp/swatch/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestControl(color string) (*Control, *fakeHost, *changeLog) {
	host := newFakeHost()
	changes := &changeLog{}
	c := NewControl(host, ControlOptions{
		Colors:   testPalette(),
		Color:    color,
		Label:    "Background",
		OnChange: changes.add,
	})
	return c, host, changes
}

func TestControl_StartsClosed(t *testing.T) {
	c, host, _ := newTestControl("")
	assert.False(t, c.IsOpen())
	assert.Nil(t, c.Grid())
	assert.False(t, host.popover)
}

func TestControl_OpenFocusesActiveSwatch(t *testing.T) {
	c, host, changes := newTestControl("#fa5252")

	c.Toggle()

	require.True(t, c.IsOpen())
	assert.True(t, host.popover)
	assert.Equal(t, Swatch(3), host.focused)
	assert.Equal(t, []string{"#fa5252"}, changes.colors)
	assert.Nil(t, c.Grid().Input(), "popover grid hides its own field")
}

func TestControl_OpenWithoutMatchFocusesFirstSwatch(t *testing.T) {
	c, host, _ := newTestControl("#010203")

	c.Open()

	assert.Equal(t, Swatch(0), host.focused)
}

func TestControl_OpenIsIdempotent(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()
	c.Open()
	assert.Equal(t, 1, host.shows)
}

func TestControl_EscapeClosesAndRefocusesTrigger(t *testing.T) {
	for _, k := range []keys.Key{keys.Escape, keys.Enter} {
		t.Run(string(k), func(t *testing.T) {
			c, host, _ := newTestControl("")
			c.Open()

			res := c.HandleKey(KeyEvent{Key: k})

			assert.Equal(t, Consumed, res)
			assert.False(t, c.IsOpen())
			assert.False(t, host.popover)
			assert.Equal(t, Trigger, host.focused)
		})
	}
}

func TestControl_CloseIsIdempotent(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()

	c.Close(true)
	c.Close(true)

	assert.Equal(t, 1, host.hides)
}

func TestControl_CloseSurvivesMissingTrigger(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()
	host.removed[Trigger] = true

	assert.NotPanics(t, func() { c.Close(true) })
	assert.False(t, c.IsOpen())
	assert.Equal(t, Swatch(0), host.focused)
}

func TestControl_TriggerClickWhileOpenClosesOnce(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()

	// The popover layer reports the click as an outside interaction first.
	assert.False(t, c.RequestClose(Trigger))
	assert.True(t, c.IsOpen())

	// Then the trigger's own activation toggles.
	c.Toggle()
	assert.False(t, c.IsOpen())
	assert.Equal(t, 1, host.shows)
	assert.Equal(t, 1, host.hides)
}

func TestControl_RequestCloseFromElsewhere(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()
	host.focused = Swatch(4)

	assert.True(t, c.RequestClose(None))
	assert.False(t, c.IsOpen())
	assert.Equal(t, Swatch(4), host.focused, "outside dismissal does not move focus")

	assert.False(t, c.RequestClose(None), "already closed")
}

func TestControl_HandleKeyWhileClosedPasses(t *testing.T) {
	c, host, changes := newTestControl("")
	host.focused = Trigger

	assert.Equal(t, Pass, c.HandleKey(KeyEvent{Key: keys.ArrowRight}))
	assert.Equal(t, Pass, c.HandleKey(KeyEvent{Key: "q"}))
	assert.Empty(t, changes.colors)
}

func TestControl_KeysOutsidePopoverPass(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()
	host.focused = ControlInput

	assert.Equal(t, Pass, c.HandleKey(KeyEvent{Key: "q"}))
	assert.Equal(t, Pass, c.HandleKey(KeyEvent{Key: keys.Escape}))
	assert.True(t, c.IsOpen())
}

func TestControl_NavigationAndQuickSelect(t *testing.T) {
	c, host, changes := newTestControl("")
	c.Open()

	c.HandleKey(KeyEvent{Key: keys.ArrowDown})
	assert.Equal(t, Swatch(5), host.focused)

	res := c.HandleKey(KeyEvent{Key: "d"})
	assert.True(t, res.StopPropagation)
	assert.Equal(t, Swatch(12), host.focused)
	assert.Equal(t, "#82c91e", changes.last())
}

func TestControl_PointerSelection(t *testing.T) {
	c, host, changes := newTestControl("")

	c.ClickSwatch(2)
	assert.Empty(t, changes.colors, "no grid while closed")

	c.Open()
	c.ClickSwatch(2)
	assert.Equal(t, Swatch(2), host.focused)
	assert.Equal(t, "#868e96", changes.last())

	c.SwatchFocused(7)
	assert.Equal(t, "#4c6ef5", changes.last())
}

func TestControl_InputTyping(t *testing.T) {
	c, _, changes := newTestControl("#123456")

	c.Input().Type("12")
	assert.Empty(t, changes.colors)

	c.Input().Blur()
	assert.Equal(t, "#123456", c.Input().Draft())

	c.Input().Type("#FFF")
	assert.Equal(t, []string{"#fff"}, changes.colors)
}

func TestControl_SetColorPropagates(t *testing.T) {
	c, _, _ := newTestControl("")
	c.Open()

	c.SetColor("#15aabf")

	assert.Equal(t, "#15aabf", c.Color())
	assert.Equal(t, "15aabf", c.Input().Display())
	assert.Equal(t, 9, c.Grid().ActiveIndex())
}

func TestControl_SetColorsWhileOpen(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()

	c.SetColors([]string{"#000", "#fff"})
	assert.Equal(t, 2, c.Grid().Len())

	host.focused = Swatch(1)
	c.HandleKey(KeyEvent{Key: keys.ArrowRight})
	assert.Equal(t, Swatch(0), host.focused)
}

func TestControl_SetRTLWhileOpen(t *testing.T) {
	c, host, _ := newTestControl("")
	c.Open()
	c.SetRTL(true)

	c.HandleKey(KeyEvent{Key: keys.ArrowLeft})
	assert.Equal(t, Swatch(1), host.focused)
}

func TestControl_GridInputLoopsWithFirstSwatch(t *testing.T) {
	host := newFakeHost()
	changes := &changeLog{}
	c := NewControl(host, ControlOptions{
		Colors:    testPalette(),
		GridInput: true,
		OnChange:  changes.add,
	})

	c.Open()
	require.NotNil(t, c.Grid().Input())
	assert.Equal(t, GridInput, host.focused, "no active color, so the field takes focus")

	res := c.HandleKey(KeyEvent{Key: keys.Tab})
	assert.Equal(t, Consumed, res)
	assert.Equal(t, Swatch(0), host.focused)

	res = c.HandleKey(KeyEvent{Key: keys.Tab, Shift: true})
	assert.Equal(t, Consumed, res)
	assert.Equal(t, GridInput, host.focused)

	assert.Same(t, c.Grid().Input(), c.InputFor(GridInput))
	assert.NotSame(t, c.Input(), c.InputFor(GridInput))
	c.InputFor(GridInput).Type("FA5252")
	assert.Equal(t, "#fa5252", changes.last())

	c.Close(true)
	assert.Same(t, c.Input(), c.InputFor(GridInput), "closed popover falls back to the main field")
}
