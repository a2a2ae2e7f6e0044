package colorinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	changes []string
}

func (r *recorder) onChange(color string) {
	r.changes = append(r.changes, color)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"f00", "#f00", true},
		{"#f00", "#f00", true},
		{"FF0000", "#ff0000", true},
		{"#FF0000", "#ff0000", true},
		{"11223344", "#11223344", true},
		{"transparent", "transparent", true},
		{"TRANSPARENT", "transparent", true},
		{"#transparent", "transparent", true},
		{"ff00", "", false},
		{"fffff", "", false},
		{"1234567", "", false},
		{"ggg", "", false},
		{"", "", false},
		{"##f00", "", false},
		{" f00", "", false},
		{"red", "", false},
		{"rgb(0,0,0)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("#f00"))
	assert.True(t, IsCanonical("#ff000080"))
	assert.True(t, IsCanonical("transparent"))
	assert.False(t, IsCanonical("#F00"))
	assert.False(t, IsCanonical("f00"))
	assert.False(t, IsCanonical("Transparent"))
	assert.False(t, IsCanonical(""))
}

func TestValidator_TypeCommitsGrammarMatches(t *testing.T) {
	tests := []struct {
		input     string
		committed string
	}{
		{"f00", "#f00"},
		{"FF0000", "#ff0000"},
		{"transparent", "transparent"},
		{"#abcdef12", "#abcdef12"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rec := &recorder{}
			v := NewValidator("#000000", rec.onChange)

			got, ok := v.Type(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.committed, got)
			assert.Equal(t, []string{tt.committed}, rec.changes)
			assert.Equal(t, tt.committed, v.Color())
		})
	}
}

func TestValidator_TypePartialKeepsDraft(t *testing.T) {
	rec := &recorder{}
	v := NewValidator("#123456", rec.onChange)

	_, ok := v.Type("ff00")
	assert.False(t, ok)
	assert.Empty(t, rec.changes)
	assert.Equal(t, "ff00", v.Draft())
	assert.Equal(t, "ff00", v.Display())
	assert.Equal(t, "#123456", v.Color())
}

func TestValidator_IncrementalCommit(t *testing.T) {
	rec := &recorder{}
	v := NewValidator("", rec.onChange)

	typed := ""
	for _, c := range "abcdef" {
		typed += string(c)
		v.Type(typed)
	}

	// "abc" commits on the way to "abcdef".
	assert.Equal(t, []string{"#abc", "#abcdef"}, rec.changes)
	assert.Equal(t, "abcdef", v.Display())
}

func TestValidator_BlurRestoresCommitted(t *testing.T) {
	rec := &recorder{}
	v := NewValidator("#123456", rec.onChange)

	v.Type("1")
	v.Type("12")
	assert.Equal(t, "12", v.Draft())

	v.Blur()
	assert.Equal(t, "#123456", v.Draft())
	assert.Equal(t, "123456", v.Display())
	assert.Empty(t, rec.changes)
}

func TestValidator_BlurAfterCommitKeepsNewColor(t *testing.T) {
	v := NewValidator("#123456", nil)

	v.Type("f00")
	v.Type("f00a")
	v.Blur()

	assert.Equal(t, "#f00", v.Draft())
}

func TestValidator_EmptyInput(t *testing.T) {
	rec := &recorder{}
	v := NewValidator("#abc", rec.onChange)

	_, ok := v.Type("")
	assert.False(t, ok)
	assert.Equal(t, "", v.Draft())
	assert.Empty(t, rec.changes)

	v.Blur()
	assert.Equal(t, "#abc", v.Draft())
}

func TestValidator_PasteBypassesGrammar(t *testing.T) {
	rec := &recorder{}
	v := NewValidator("#123456", rec.onChange)

	v.Paste("rgba(0,0,0,.5)")

	assert.Equal(t, []string{"rgba(0,0,0,.5)"}, rec.changes)
	assert.Equal(t, "#123456", v.Draft())
	assert.Equal(t, "#123456", v.Color())
}

func TestValidator_SetColorResetsDraft(t *testing.T) {
	v := NewValidator("#123456", nil)
	v.Type("12")

	v.SetColor("#abcdef")
	assert.Equal(t, "#abcdef", v.Draft())
	assert.Equal(t, "#abcdef", v.Color())

	v.SetColor("")
	assert.Equal(t, "", v.Display())
}

func TestValidator_Idempotence(t *testing.T) {
	for _, color := range []string{"#f00", "#ff0000", "#ff000080", "transparent"} {
		t.Run(color, func(t *testing.T) {
			rec := &recorder{}
			v := NewValidator("", rec.onChange)

			first, ok := v.Type(color)
			require.True(t, ok)

			typed := ""
			for _, c := range first {
				typed += string(c)
				v.Type(typed)
			}

			require.NotEmpty(t, rec.changes)
			assert.Equal(t, first, rec.changes[len(rec.changes)-1])
			assert.Equal(t, first, v.Color())
		})
	}
}

func TestValidator_NilCallback(t *testing.T) {
	v := NewValidator("", nil)
	assert.NotPanics(t, func() {
		v.Type("fff")
		v.Paste("anything")
	})
}
