package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionProtocolOrder(t *testing.T) {
	a, b := NewStep("A"), NewStep("B")
	s := startedState(t, ModeStrict, 0, a, b)
	rec := &recorder{}
	rec.attach(s)

	a.OnExit(func(MovingDirection) {
		assert.True(t, a.IsCompleted(), "completed before exit")
		assert.True(t, a.IsSelected(), "still selected during exit")
	})
	b.OnEnter(func(MovingDirection) {
		assert.True(t, b.IsSelected(), "selected before enter")
		assert.Equal(t, 1, s.CurrentStepIndex())
	})

	err := s.NavigationMode().GoToStep(context.Background(), 1,
		WithPreFinalize(func(d MovingDirection) { rec.add("pre:" + d.String()) }),
		WithPostFinalize(func(d MovingDirection) { rec.add("post:" + d.String()) }),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"pre:forwards",
		"exited:0:forwards",
		"entered:1:forwards",
		"post:forwards",
	}, rec.all())
	assert.False(t, a.IsSelected())
	assert.True(t, b.IsSelected())
}

func TestRejectedTransitionReentersCurrentStep(t *testing.T) {
	a := NewStep("A", WithCanExit(Fixed(false)))
	bEntered := false
	b := NewStep("B", WithEnterListener(func(MovingDirection) { bEntered = true }))
	s := startedState(t, ModeFree, 0, a, b)
	rec := &recorder{}
	rec.attach(s)

	err := s.NavigationMode().GoToStep(context.Background(), 1,
		WithPreFinalize(func(MovingDirection) { rec.add("pre") }),
		WithPostFinalize(func(MovingDirection) { rec.add("post") }),
	)
	require.NoError(t, err)

	assert.Equal(t, 0, s.CurrentStepIndex())
	assert.False(t, bEntered)
	assert.True(t, a.IsSelected())
	assert.False(t, a.IsCompleted())
	assert.Equal(t, []string{"exited:0:stay", "entered:0:stay"}, rec.all())
}

func TestOutOfRangeDestinationIsRejected(t *testing.T) {
	s := startedState(t, ModeFree, 0, NewStep("A"), NewStep("B"))
	rec := &recorder{}
	rec.attach(s)

	ok, err := s.NavigationMode().CanGoToStep(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, ok)

	goTo(t, s, 5)
	assert.Equal(t, 0, s.CurrentStepIndex())
	assert.Equal(t, []string{"exited:0:stay", "entered:0:stay"}, rec.all())
}

func TestGuardChainShortCircuits(t *testing.T) {
	enterCalls := 0
	a := NewStep("A", WithCanExit(Fixed(false)))
	b := NewStep("B", WithCanEnter(Predicate(func(context.Context, MovingDirection) (bool, error) {
		enterCalls++
		return true, nil
	})))
	s := startedState(t, ModeFree, 0, a, b)

	ok, err := s.NavigationMode().CanGoToStep(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, enterCalls)
}

func TestGuardsReceiveMovingDirection(t *testing.T) {
	var exits, enters []MovingDirection
	record := func(into *[]MovingDirection) Guard {
		return Predicate(func(_ context.Context, d MovingDirection) (bool, error) {
			*into = append(*into, d)
			return true, nil
		})
	}
	a := NewStep("A", WithCanExit(record(&exits)), WithCanEnter(record(&enters)))
	b := NewStep("B", WithCanExit(record(&exits)), WithCanEnter(record(&enters)))
	s := startedState(t, ModeFree, 0, a, b)

	goTo(t, s, 1)
	goTo(t, s, 0)
	goTo(t, s, 0)

	assert.Equal(t, []MovingDirection{Forwards, Backwards, Stay}, exits)
	assert.Equal(t, []MovingDirection{Forwards, Backwards, Stay}, enters)
}

func TestGuardErrorIsTreatedAsDenial(t *testing.T) {
	a := NewStep("A", WithCanExit(Predicate(func(context.Context, MovingDirection) (bool, error) {
		return false, errors.New("validation backend down")
	})))
	s := startedState(t, ModeFree, 0, a, NewStep("B"))
	rec := &recorder{}
	rec.attach(s)

	ok, err := s.NavigationMode().CanGoToStep(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)

	goTo(t, s, 1)
	assert.Equal(t, 0, s.CurrentStepIndex())
	assert.Equal(t, []string{"exited:0:stay", "entered:0:stay"}, rec.all())
}

func TestProgrammerErrorFromGuardPropagates(t *testing.T) {
	a := NewStep("A", WithCanExit(Predicate(func(context.Context, MovingDirection) (bool, error) {
		return false, ErrInvalidGuardType
	})))
	s := startedState(t, ModeFree, 0, a, NewStep("B"))
	rec := &recorder{}
	rec.attach(s)

	_, err := s.NavigationMode().CanGoToStep(context.Background(), 1)
	assert.True(t, IsInvalidGuardType(err))

	err = s.NavigationMode().GoToStep(context.Background(), 1)
	assert.True(t, IsInvalidGuardType(err))
	assert.Empty(t, rec.all())
	assert.Equal(t, 0, s.CurrentStepIndex())
}

func TestGoToStepBeforeResetSurfacesIndexError(t *testing.T) {
	s := NewState()
	s.Initialize([]*Step{NewStep("A"), NewStep("B")}, "free", 4, false)

	err := s.NavigationMode().GoToStep(context.Background(), 1)
	assert.True(t, IsIndexOutOfRange(err))
}

func TestBlockingGuardHonoursContext(t *testing.T) {
	a := NewStep("A", WithCanExit(Predicate(func(ctx context.Context, _ MovingDirection) (bool, error) {
		<-ctx.Done()
		return false, ctx.Err()
	})))
	s := startedState(t, ModeFree, 0, a, NewStep("B"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.NoError(t, s.NavigationMode().GoToStep(ctx, 1))
	assert.Equal(t, 0, s.CurrentStepIndex())
}

func TestWaitingForRunningTransitionHonoursContext(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	a := NewStep("A", WithCanExit(Predicate(func(context.Context, MovingDirection) (bool, error) {
		close(entered)
		<-release
		return true, nil
	})))
	s := startedState(t, ModeFree, 0, a, NewStep("B"))

	first := s.NavigationMode().GoToStepAsync(context.Background(), 1)
	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := s.NavigationMode().GoToStep(ctx, 0)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	require.NoError(t, <-first)
	assert.Equal(t, 1, s.CurrentStepIndex())
	last, ok := s.LastTransition()
	require.True(t, ok)
	assert.True(t, last.Accepted)
}

func TestGoToNextAndPreviousStep(t *testing.T) {
	a, b := NewStep("A"), NewStep("B")
	s := startedState(t, ModeStrict, 0, a, b)
	mode := s.NavigationMode()
	ctx := context.Background()
	rec := &recorder{}
	rec.attach(s)

	require.NoError(t, mode.GoToPreviousStep(ctx))
	assert.Empty(t, rec.all(), "no-op on first step")

	require.NoError(t, mode.GoToNextStep(ctx))
	assert.Equal(t, 1, s.CurrentStepIndex())

	rec.reset()
	require.NoError(t, mode.GoToNextStep(ctx))
	assert.Empty(t, rec.all(), "no-op on last step")

	require.NoError(t, mode.GoToPreviousStep(ctx))
	assert.Equal(t, 0, s.CurrentStepIndex())
	assert.Equal(t, []string{"exited:1:backwards", "entered:0:backwards"}, rec.all())
}

func TestGoToStepAsync(t *testing.T) {
	release := make(chan struct{})
	b := NewStep("B", WithCanEnter(Predicate(func(context.Context, MovingDirection) (bool, error) {
		<-release
		return true, nil
	})))
	s := startedState(t, ModeFree, 0, NewStep("A"), b)

	done := s.NavigationMode().GoToStepAsync(context.Background(), 1)
	select {
	case <-done:
		t.Fatal("transition finished before its guard resolved")
	case <-time.After(10 * time.Millisecond):
	}

	close(release)
	err, ok := <-done
	require.True(t, ok)
	require.NoError(t, err)
	_, ok = <-done
	assert.False(t, ok, "channel closed after result")
	assert.True(t, b.IsSelected())
}

func TestConcurrentTransitionsKeepSingleSelection(t *testing.T) {
	steps := []*Step{NewStep("A"), NewStep("B"), NewStep("C"), NewStep("D"), NewStep("E")}
	s := startedState(t, ModeFree, 0, steps...)
	mode := s.NavigationMode()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, mode.GoToNextStep(context.Background()))
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, s.CurrentStepIndex())
	assert.Equal(t, 1, selectedCount(s))
	assert.True(t, steps[4].IsSelected())
	assert.Equal(t, uint64(4), s.Transitions())
}

func TestCompletionFlag(t *testing.T) {
	a, done := NewStep("A"), NewCompletionStep("Done")
	s := startedState(t, ModeStrict, 0, a, done)
	assert.False(t, s.IsCompleted())

	goTo(t, s, 1)
	assert.True(t, s.IsCompleted())
	assert.True(t, a.IsCompleted())
	assert.True(t, done.IsCompleted())

	require.NoError(t, s.NavigationMode().Reset())
	assert.False(t, s.IsCompleted())
	assert.False(t, a.IsCompleted())
	assert.False(t, done.IsCompleted())
	assert.True(t, a.IsSelected())
}

func TestResetIsIdempotent(t *testing.T) {
	a, b, c := NewStep("A"), NewStep("B", WithOptional(true)), NewStep("C")
	s := startedState(t, ModeStrict, 0, a, b, c)
	goTo(t, s, 2)

	require.NoError(t, s.NavigationMode().Reset())
	once := s.Snapshot()
	require.NoError(t, s.NavigationMode().Reset())
	twice := s.Snapshot()

	assert.Equal(t, once, twice)
	assert.Equal(t, 0, twice.CurrentStepIndex)
	assert.Equal(t, 1, selectedCount(s))
}

func TestResetEntersDefaultForwards(t *testing.T) {
	s := NewState()
	s.Initialize([]*Step{NewStep("A"), NewStep("B")}, "free", 1, false)
	rec := &recorder{}
	rec.attach(s)

	require.NoError(t, s.NavigationMode().Reset())
	assert.Equal(t, []string{"entered:1:forwards"}, rec.all())
}

func TestResetOntoSoleCompletionStepLeavesFlowOpen(t *testing.T) {
	done := NewCompletionStep("Done")
	s := NewState()
	s.Initialize([]*Step{done}, "free", 0, false)
	rec := &recorder{}
	rec.attach(s)

	require.NoError(t, s.NavigationMode().Reset())
	assert.Equal(t, []string{"entered:0:forwards"}, rec.all())
	assert.True(t, done.IsSelected())
	// completion is only set by a transition into the step
	assert.False(t, s.IsCompleted())
	assert.False(t, done.IsCompleted())
}
