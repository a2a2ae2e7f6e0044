// Package picker coordinates focus and keyboard dispatch for a color picker
// made of a trigger, a hex field, and a popover grid of swatches.
//
// The package never renders anything. Hosts supply element handles through
// Focuser and Host and report user input back as method calls; the picker
// answers with focus commands, popover commands, and change notifications.
package picker

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TargetKind identifies the kind of element a Target addresses.
type TargetKind int

const (
	KindNone TargetKind = iota
	KindSwatch
	KindGridInput
	KindTrigger
	KindControlInput
)

// Target is an opaque handle to a focusable element of the picker.
type Target struct {
	Kind  TargetKind
	Index int // swatch position, only meaningful for KindSwatch
}

var (
	// None means focus is outside the picker.
	None = Target{}
	// GridInput is the optional hex field rendered inside the grid.
	GridInput = Target{Kind: KindGridInput}
	// Trigger is the swatch button that opens the popover.
	Trigger = Target{Kind: KindTrigger}
	// ControlInput is the always-visible hex field next to the trigger.
	ControlInput = Target{Kind: KindControlInput}
)

// Swatch returns the handle for grid position i.
func Swatch(i int) Target {
	return Target{Kind: KindSwatch, Index: i}
}

// SwatchIndex returns the grid position for swatch targets.
func (t Target) SwatchIndex() (int, bool) {
	if t.Kind != KindSwatch {
		return -1, false
	}
	return t.Index, true
}

// Writable reports whether the target is a text field. Quick-select keys
// typed into a text field are text, not shortcuts.
func (t Target) Writable() bool {
	return t.Kind == KindGridInput || t.Kind == KindControlInput
}

// String renders the target as used on the wire: "swatch:3", "trigger", ...
func (t Target) String() string {
	switch t.Kind {
	case KindSwatch:
		return "swatch:" + strconv.Itoa(t.Index)
	case KindGridInput:
		return "grid-input"
	case KindTrigger:
		return "trigger"
	case KindControlInput:
		return "input"
	}
	return "none"
}

// ParseTarget is the inverse of Target.String.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "", "none":
		return None, nil
	case "grid-input":
		return GridInput, nil
	case "trigger":
		return Trigger, nil
	case "input":
		return ControlInput, nil
	}
	if rest, ok := strings.CutPrefix(s, "swatch:"); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 {
			return None, fmt.Errorf("invalid swatch target: %q", s)
		}
		return Swatch(i), nil
	}
	return None, fmt.Errorf("unknown target: %q", s)
}

// MarshalJSON encodes the target as its string form.
func (t Target) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes the string form.
func (t *Target) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTarget(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
