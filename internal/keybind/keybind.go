// Package keybind holds the quick-select key layout for the swatch grid.
//
// The layout assumes a QWERTY keyboard: key labels are characters, not
// physical positions, so other layouts get different (still valid) keys.
package keybind

import "strings"

// RowWidth is the number of keys per layout row.
const RowWidth = 5

// Layout is the row-major quick-select layout. Each row lines up with one
// row of the swatch grid.
var Layout = [][]string{
	{"1", "2", "3", "4", "5"},
	{"q", "w", "e", "r", "t"},
	{"a", "s", "d", "f", "g"},
}

var (
	bindings []string
	indexOf  map[string]int
)

func init() {
	indexOf = make(map[string]int)
	for _, row := range Layout {
		for _, k := range row {
			indexOf[k] = len(bindings)
			bindings = append(bindings, k)
		}
	}
}

// Len returns the number of bound grid positions. Palettes longer than this
// cannot be fully reached by quick-select.
func Len() int {
	return len(bindings)
}

// Keys returns a copy of the flattened layout in grid order.
func Keys() []string {
	out := make([]string, len(bindings))
	copy(out, bindings)
	return out
}

// KeyForIndex returns the quick-select key for grid position i.
func KeyForIndex(i int) (string, bool) {
	if i < 0 || i >= len(bindings) {
		return "", false
	}
	return bindings[i], true
}

// IndexForKey returns the grid position bound to key. Matching ignores case.
func IndexForKey(key string) (int, bool) {
	i, ok := indexOf[strings.ToLower(key)]
	return i, ok
}
