package picker

import "github.com/amterp/swatch/internal/keys"

// Focuser moves input focus between elements the host renders.
//
// Focus is a command: hosts must not report a focus change they were told
// to make back to the picker. Focus returns false when the element no
// longer exists, which callers treat as a no-op.
type Focuser interface {
	Focus(t Target) bool
	Focused() Target
}

// Host is everything the full control needs from its render layer.
type Host interface {
	Focuser
	ShowPopover()
	HidePopover()
}

// KeyEvent is a keydown delivered by the host.
type KeyEvent struct {
	Key   keys.Key
	Shift bool
	// Target is the element the event originated from. When None the
	// picker falls back to the host's focused element.
	Target Target
}

// Result tells the host what to do with an event after the picker saw it.
type Result struct {
	PreventDefault  bool
	StopPropagation bool
}

var (
	// Pass leaves the event to the host and other handlers.
	Pass = Result{}
	// Consumed suppresses default behavior and stops propagation.
	Consumed = Result{PreventDefault: true, StopPropagation: true}
)

// Handled reports whether the picker claimed the event.
func (r Result) Handled() bool {
	return r.PreventDefault || r.StopPropagation
}
