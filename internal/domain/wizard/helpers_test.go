package wizard

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder collects State events and ad-hoc markers in order
type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *recorder) attach(s *State) func() {
	return s.Subscribe(func(e Event) {
		r.add(fmt.Sprintf("%s:%d:%s", e.Type, e.StepIndex, e.Direction))
	})
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// startedState initialises a State with steps and resets it onto defaultIndex
func startedState(t *testing.T, mode ModeName, defaultIndex int, steps ...*Step) *State {
	t.Helper()
	s := NewState()
	s.Initialize(steps, mode.String(), defaultIndex, false)
	require.NoError(t, s.NavigationMode().Reset())
	return s
}

func selectedCount(s *State) int {
	n := 0
	for _, step := range s.Steps() {
		if step.IsSelected() {
			n++
		}
	}
	return n
}

func goTo(t *testing.T, s *State, destination int) {
	t.Helper()
	require.NoError(t, s.NavigationMode().GoToStep(context.Background(), destination))
}
