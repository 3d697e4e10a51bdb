package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNavigationMode(t *testing.T) {
	s := NewState()

	tests := []struct {
		name     string
		input    ModeName
		expected ModeName
	}{
		{"free", "free", ModeFree},
		{"semi-strict", "semi-strict", ModeSemiStrict},
		{"strict", "strict", ModeStrict},
		{"empty falls back to strict", "", ModeStrict},
		{"unknown falls back to strict", "anarchy", ModeStrict},
		{"case sensitive", "FREE", ModeStrict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewNavigationMode(tt.input, s).Name())
		})
	}
}

func TestNewNavigationModeTypes(t *testing.T) {
	s := NewState()
	assert.IsType(t, &FreeMode{}, NewNavigationMode(ModeFree, s))
	assert.IsType(t, &SemiStrictMode{}, NewNavigationMode(ModeSemiStrict, s))
	assert.IsType(t, &StrictMode{}, NewNavigationMode(ModeStrict, s))
}
