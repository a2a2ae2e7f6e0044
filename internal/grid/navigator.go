// Package grid computes keyboard focus movement across a swatch grid.
package grid

import (
	"github.com/amterp/swatch/internal/keybind"
	"github.com/amterp/swatch/internal/keys"
)

// Stride is the vertical step between rows. It matches the quick-select
// layout width and is not derived from the rendered column count: a palette
// rendered with a different width steps to the wrong row on up/down.
const Stride = keybind.RowWidth

// NextFocusIndex returns the grid position that should receive focus after
// key is pressed while current holds focus.
//
// length counts swatches only (never the text field). The second return
// value is false when current is not a grid position or key does not move
// focus; callers must not force focus in that case.
func NextFocusIndex(current int, key keys.Key, length int, rtl bool) (int, bool) {
	if length <= 0 || current < 0 || current >= length {
		return current, false
	}

	forward, backward := keys.ArrowRight, keys.ArrowLeft
	if rtl {
		forward, backward = keys.ArrowLeft, keys.ArrowRight
	}

	switch key {
	case forward:
		return wrap(current+1, length), true
	case backward:
		return wrap(current-1, length), true
	case keys.ArrowDown:
		return wrap(current+Stride, length), true
	case keys.ArrowUp:
		return wrap(current-Stride, length), true
	}
	return current, false
}

// wrap is i mod n, always in [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
