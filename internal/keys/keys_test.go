package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected Key
	}{
		{"esc", Escape},
		{"Escape", Escape},
		{"return", Enter},
		{"Tab", Tab},
		{"up", ArrowUp},
		{"ArrowDown", ArrowDown},
		{"left", ArrowLeft},
		{"ArrowRight", ArrowRight},
		{"Q", "q"},
		{"1", "1"},
		{"f5", "f5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestKey_IsArrow(t *testing.T) {
	assert.True(t, ArrowUp.IsArrow())
	assert.True(t, ArrowLeft.IsArrow())
	assert.False(t, Tab.IsArrow())
	assert.False(t, Key("a").IsArrow())
}

func TestKey_IsPrintable(t *testing.T) {
	assert.True(t, Key("a").IsPrintable())
	assert.True(t, Key("é").IsPrintable())
	assert.False(t, Enter.IsPrintable())
	assert.False(t, Key("").IsPrintable())
}
