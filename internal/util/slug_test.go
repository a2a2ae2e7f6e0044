package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Brand Colors", []string{"brand", "colors"}},
		{"Café au lait", []string{"cafe", "au", "lait"}},
		{"Multiple   spaces", []string{"multiple", "spaces"}},
		{"  --trim--  ", []string{"trim"}},
		{"v2.0", []string{"v2", "0"}},
		{"", nil},
		{"---", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlugWords(tt.input))
		})
	}
}

func TestCamelSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Brand Colors", "brandColors"},
		{"element stroke", "elementStroke"},
		{"elementStroke", "elementstroke"},
		{"Résumé accents", "resumeAccents"},
		{"dark-mode 2", "darkMode2"},
		{"a", "a"},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CamelSlug(tt.input))
		})
	}
}
