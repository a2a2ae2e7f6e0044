// Package colorinput validates free-form hex color text as the user types.
package colorinput

import (
	"regexp"
	"strings"
)

// Transparent is the only non-hex color the field accepts.
const Transparent = "transparent"

var grammar = regexp.MustCompile(`^([0-9a-f]{3}|[0-9a-f]{6}|[0-9a-f]{8}|transparent)$`)

// Normalize lowercases raw, strips one leading '#', and returns the canonical
// color ("#" + hex digits, or "transparent") when the rest matches the
// grammar.
func Normalize(raw string) (string, bool) {
	value := strings.TrimPrefix(strings.ToLower(raw), "#")
	if !grammar.MatchString(value) {
		return "", false
	}
	if value == Transparent {
		return Transparent, true
	}
	return "#" + value, true
}

// IsCanonical reports whether color is already in canonical form.
func IsCanonical(color string) bool {
	if color == Transparent {
		return true
	}
	if !strings.HasPrefix(color, "#") {
		return false
	}
	n, ok := Normalize(color)
	return ok && n == color
}

// ChangeFunc receives committed colors.
type ChangeFunc func(color string)

// Validator owns the draft text of a color field. The committed color
// belongs to the caller; the validator only proposes new values through
// onChange and tracks the last one it knows about.
type Validator struct {
	color    string
	draft    string
	onChange ChangeFunc
}

// NewValidator creates a validator showing color. An empty color means no
// color is set.
func NewValidator(color string, onChange ChangeFunc) *Validator {
	return &Validator{
		color:    color,
		draft:    color,
		onChange: onChange,
	}
}

// Type handles a change of the field's full text. The draft always follows
// the typed text (lowercased) so partial values stay editable. When the text
// is a complete color it is committed immediately.
func (v *Validator) Type(raw string) (string, bool) {
	value := strings.ToLower(raw)
	v.draft = value

	committed, ok := Normalize(value)
	if !ok {
		return "", false
	}
	v.color = committed
	v.emit(committed)
	return committed, true
}

// Paste forwards pasted text to onChange without checking the grammar.
// Pasted values may come in any notation the consumer understands.
func (v *Validator) Paste(text string) {
	v.emit(text)
}

// Blur drops any partial draft and shows the last committed color again.
func (v *Validator) Blur() {
	v.draft = v.color
}

// SetColor reflects a committed color coming from the caller.
func (v *Validator) SetColor(color string) {
	v.color = color
	v.draft = color
}

// Color returns the last committed color known to the validator.
func (v *Validator) Color() string {
	return v.color
}

// Draft returns the in-progress text.
func (v *Validator) Draft() string {
	return v.draft
}

// Display returns the draft as the field shows it, without a leading '#'.
func (v *Validator) Display() string {
	return strings.TrimPrefix(v.draft, "#")
}

func (v *Validator) emit(color string) {
	if v.onChange != nil {
		v.onChange(color)
	}
}
