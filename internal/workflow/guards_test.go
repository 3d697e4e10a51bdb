package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

func TestDefaultGuardRegistry(t *testing.T) {
	reg := NewDefaultGuardRegistry()
	assert.Equal(t, []string{GuardAlways, GuardBackwardOnly, GuardForwardOnly, GuardNever}, reg.Names())

	tests := []struct {
		guard     string
		direction wizard.MovingDirection
		expected  bool
	}{
		{GuardAlways, wizard.Backwards, true},
		{GuardNever, wizard.Forwards, false},
		{GuardForwardOnly, wizard.Forwards, true},
		{GuardForwardOnly, wizard.Stay, true},
		{GuardForwardOnly, wizard.Backwards, false},
		{GuardBackwardOnly, wizard.Backwards, true},
		{GuardBackwardOnly, wizard.Forwards, false},
	}

	for _, tt := range tests {
		t.Run(tt.guard+"/"+tt.direction.String(), func(t *testing.T) {
			g, ok := reg.Get(tt.guard)
			require.True(t, ok)
			got, err := g.Evaluate(context.Background(), tt.direction)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveGuard(t *testing.T) {
	reg := NewDefaultGuardRegistry()

	g, err := resolveGuard(false, reg)
	require.NoError(t, err)
	assert.Equal(t, wizard.Fixed(false), g)

	g, err = resolveGuard(GuardNever, reg)
	require.NoError(t, err)
	assert.Equal(t, wizard.Fixed(false), g)

	_, err = resolveGuard("missing", reg)
	assert.EqualError(t, err, "no guard registered with name: missing")

	_, err = resolveGuard("always", nil)
	assert.Error(t, err)

	_, err = resolveGuard(1.5, reg)
	assert.True(t, wizard.IsInvalidGuardType(err))
}
