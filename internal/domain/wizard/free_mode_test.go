package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeModeEverythingNavigable(t *testing.T) {
	s := startedState(t, ModeFree, 0, NewStep("A"), NewStep("B"), NewCompletionStep("C"))
	mode := s.NavigationMode()

	for i := 0; i < s.Len(); i++ {
		assert.True(t, mode.IsNavigable(i), "index %d", i)
	}
	assert.False(t, mode.IsNavigable(-1))
	assert.False(t, mode.IsNavigable(3))
}

func TestFreeModeJumpsToCompletionStep(t *testing.T) {
	a, b, c := NewStep("A"), NewStep("B"), NewCompletionStep("C")
	s := startedState(t, ModeFree, 0, a, b, c)

	ok, err := s.NavigationMode().CanGoToStep(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, ok)

	goTo(t, s, 2)
	assert.True(t, s.IsCompleted())
	assert.True(t, b.IsCompleted())
}

func TestFreeModeStillHonoursGuards(t *testing.T) {
	a, b := NewStep("A"), NewStep("B", WithCanEnter(Fixed(false)))
	s := startedState(t, ModeFree, 0, a, b)

	goTo(t, s, 1)
	assert.Equal(t, 0, s.CurrentStepIndex())
	assert.True(t, s.NavigationMode().IsNavigable(1))
}

func TestFreeModeReset(t *testing.T) {
	s := NewState()
	s.Initialize([]*Step{NewStep("A"), NewCompletionStep("Done")}, "free", 1, false)
	assert.True(t, IsIllegalDefaultStep(s.NavigationMode().Reset()))
}
