package keys

import (
	"strings"
	"unicode/utf8"
)

// Key is a logical key name as delivered by the host input layer.
// Printable keys are their lowercased character.
type Key string

const (
	Escape     Key = "escape"
	Enter      Key = "enter"
	Tab        Key = "tab"
	ArrowUp    Key = "arrowup"
	ArrowDown  Key = "arrowdown"
	ArrowLeft  Key = "arrowleft"
	ArrowRight Key = "arrowright"
)

// aliases maps names used by common hosts (terminals, browsers) to logical keys.
var aliases = map[string]Key{
	"esc":        Escape,
	"escape":     Escape,
	"enter":      Enter,
	"return":     Enter,
	"tab":        Tab,
	"up":         ArrowUp,
	"arrowup":    ArrowUp,
	"down":       ArrowDown,
	"arrowdown":  ArrowDown,
	"left":       ArrowLeft,
	"arrowleft":  ArrowLeft,
	"right":      ArrowRight,
	"arrowright": ArrowRight,
}

// Normalize converts a host key name into a logical Key.
// Anything without an alias passes through lowercased, so "Q" and "q"
// resolve to the same quick-select key.
func Normalize(name string) Key {
	lower := strings.ToLower(name)
	if k, ok := aliases[lower]; ok {
		return k
	}
	return Key(lower)
}

// IsArrow reports whether k is one of the four arrow keys.
func (k Key) IsArrow() bool {
	switch k {
	case ArrowUp, ArrowDown, ArrowLeft, ArrowRight:
		return true
	}
	return false
}

// IsPrintable reports whether k is a single-character key.
func (k Key) IsPrintable() bool {
	return utf8.RuneCountInString(string(k)) == 1
}
