package wizard

import (
	"context"
)

// NavigationMode is the pluggable policy deciding which transitions are allowed
type NavigationMode interface {
	// Name returns the mode name
	Name() ModeName

	// CanGoToStep evaluates, in order, that the destination exists, that the
	// current step may be exited, that the destination may be entered and the
	// mode's completion prerequisites. It stops at the first negative answer.
	CanGoToStep(ctx context.Context, destination int) (bool, error)

	// GoToStep performs the transition if CanGoToStep allows it. Otherwise
	// the current step receives Exit(Stay) followed by Enter(Stay).
	// Only programmer errors are returned, plus ctx.Err() when ctx ends
	// while waiting for a running transition; a denial is not an error.
	GoToStep(ctx context.Context, destination int, opts ...TransitionOption) error

	// GoTo resolves d and delegates to GoToStep
	GoTo(ctx context.Context, d Destination, opts ...TransitionOption) error

	// GoToStepAsync runs GoToStep in its own goroutine. The channel receives
	// its result and is closed.
	GoToStepAsync(ctx context.Context, destination int, opts ...TransitionOption) <-chan error

	// GoToNextStep moves forward by one, or does nothing on the last step
	GoToNextStep(ctx context.Context, opts ...TransitionOption) error

	// GoToPreviousStep moves back by one, or does nothing on the first step
	GoToPreviousStep(ctx context.Context, opts ...TransitionOption) error

	// IsNavigable is the coarse, synchronous check for navigation bar links.
	// It never evaluates guards and never gates GoToStep.
	IsNavigable(destination int) bool

	// Reset clears all completion and selects the default step. The flow
	// stays uncompleted even when the default step is a completion step.
	Reset() error
}

// TransitionOption configures a single transition request
type TransitionOption func(*transitionConfig)

type transitionConfig struct {
	preFinalize  func(MovingDirection)
	postFinalize func(MovingDirection)
}

// WithPreFinalize runs fn before the current step is torn down
func WithPreFinalize(fn func(MovingDirection)) TransitionOption {
	return func(c *transitionConfig) { c.preFinalize = fn }
}

// WithPostFinalize runs fn after the destination step has been entered
func WithPostFinalize(fn func(MovingDirection)) TransitionOption {
	return func(c *transitionConfig) { c.postFinalize = fn }
}

// policy is implemented by each mode variant and plugged into navigator.
type policy interface {
	name() ModeName
	// prerequisitesMet is the last stage of the eligibility chain.
	prerequisitesMet(destination int) bool
	// invalidate runs between leaving the current step and moving the index.
	invalidate(current, destination int)
	navigable(destination int) bool
	checkDefault(defaultIndex int) error
}

// navigator carries the behaviour shared by all modes.
type navigator struct {
	state  *State
	policy policy
}

func (n *navigator) Name() ModeName {
	return n.policy.name()
}

func (n *navigator) CanGoToStep(ctx context.Context, destination int) (bool, error) {
	return n.canGoToStep(ctx, destination)
}

func (n *navigator) canGoToStep(ctx context.Context, destination int) (bool, error) {
	st := n.state
	current := st.CurrentStepIndex()
	direction := directionBetween(current, destination)

	ok, err := evaluateChain(ctx,
		func(context.Context) (bool, error) {
			return st.HasStep(destination), nil
		},
		func(ctx context.Context) (bool, error) {
			step, err := st.StepAt(current)
			if err != nil {
				return false, err
			}
			return step.CanExitStep(ctx, direction)
		},
		func(ctx context.Context) (bool, error) {
			step, err := st.StepAt(destination)
			if err != nil {
				return false, err
			}
			return step.CanEnterStep(ctx, direction)
		},
		func(context.Context) (bool, error) {
			return n.policy.prerequisitesMet(destination), nil
		},
	)
	if err != nil {
		if IsProgrammerError(err) {
			return false, err
		}
		st.logger.Warn("guard failed, treating as denial",
			"mode", n.Name(), "from", current, "to", destination, "error", err)
		return false, nil
	}
	return ok, nil
}

func (n *navigator) GoToStep(ctx context.Context, destination int, opts ...TransitionOption) error {
	if err := n.state.lockContext(ctx); err != nil {
		return err
	}
	defer n.state.unlock()
	return n.goToStep(ctx, destination, opts...)
}

func (n *navigator) GoTo(ctx context.Context, d Destination, opts ...TransitionOption) error {
	if err := n.state.lockContext(ctx); err != nil {
		return err
	}
	defer n.state.unlock()

	destination, err := n.state.ResolveDestination(d)
	if err != nil {
		return err
	}
	return n.goToStep(ctx, destination, opts...)
}

func (n *navigator) GoToStepAsync(ctx context.Context, destination int, opts ...TransitionOption) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- n.GoToStep(ctx, destination, opts...)
	}()
	return done
}

func (n *navigator) GoToNextStep(ctx context.Context, opts ...TransitionOption) error {
	if err := n.state.lockContext(ctx); err != nil {
		return err
	}
	defer n.state.unlock()

	if !n.state.HasNextStep() {
		return nil
	}
	return n.goToStep(ctx, n.state.CurrentStepIndex()+1, opts...)
}

func (n *navigator) GoToPreviousStep(ctx context.Context, opts ...TransitionOption) error {
	if err := n.state.lockContext(ctx); err != nil {
		return err
	}
	defer n.state.unlock()

	if !n.state.HasPreviousStep() {
		return nil
	}
	return n.goToStep(ctx, n.state.CurrentStepIndex()-1, opts...)
}

// goToStep expects the transition lock to be held.
func (n *navigator) goToStep(ctx context.Context, destination int, opts ...TransitionOption) error {
	cfg := &transitionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	st := n.state
	allowed, err := n.canGoToStep(ctx, destination)
	if err != nil {
		return err
	}

	current := st.CurrentStepIndex()
	currentStep, err := st.StepAt(current)
	if err != nil {
		return err
	}

	if !allowed {
		st.exitStep(current, currentStep, Stay)
		st.enterStep(current, currentStep, Stay)
		st.recordTransition(Transition{From: current, To: destination, Direction: Stay})
		st.logger.Debug("transition rejected", "mode", n.Name(), "from", current, "to", destination)
		return nil
	}

	direction := directionBetween(current, destination)

	if cfg.preFinalize != nil {
		cfg.preFinalize(direction)
	}

	currentStep.setCompleted(true)
	st.exitStep(current, currentStep, direction)
	currentStep.setSelected(false)

	n.policy.invalidate(current, destination)

	st.setCurrentIndex(destination)
	next, err := st.StepAt(destination)
	if err != nil {
		return err
	}
	next.setSelected(true)
	if next.IsCompletionStep() {
		st.setCompleted(true)
		for _, step := range st.Steps() {
			step.setCompleted(true)
		}
	} else {
		st.setCompleted(false)
	}
	st.enterStep(destination, next, direction)

	if cfg.postFinalize != nil {
		cfg.postFinalize(direction)
	}

	st.recordTransition(Transition{From: current, To: destination, Direction: direction, Accepted: true})
	st.logger.Debug("transition accepted",
		"mode", n.Name(), "from", current, "to", destination, "direction", direction)
	return nil
}

func (n *navigator) IsNavigable(destination int) bool {
	if !n.state.HasStep(destination) {
		return false
	}
	return n.policy.navigable(destination)
}

func (n *navigator) Reset() error {
	st := n.state
	st.lock()
	defer st.unlock()

	defaultIndex := st.DefaultStepIndex()
	if !st.HasStep(defaultIndex) {
		return ErrNoSuchDefaultStep.WithDetails(map[string]interface{}{
			"default_step_index": defaultIndex,
			"len":                st.Len(),
		})
	}
	if err := n.policy.checkDefault(defaultIndex); err != nil {
		return err
	}

	steps := st.Steps()
	for _, step := range steps {
		step.setCompleted(false)
		step.setSelected(false)
	}
	st.setCompleted(false)
	st.setCurrentIndex(defaultIndex)

	step := steps[defaultIndex]
	step.setSelected(true)
	st.enterStep(defaultIndex, step, Forwards)
	return nil
}

// previousStepsDone reports whether every step before destination is
// completed, optional or selected.
func (n *navigator) previousStepsDone(destination int) bool {
	steps := n.state.Steps()
	for i := 0; i < destination && i < len(steps); i++ {
		step := steps[i]
		if !step.IsCompleted() && !step.IsOptional() && !step.IsSelected() {
			return false
		}
	}
	return true
}

// completionDefaultAllowed rejects a completion step as default unless it is the only step.
func (n *navigator) completionDefaultAllowed(defaultIndex int) error {
	steps := n.state.Steps()
	if steps[defaultIndex].IsCompletionStep() && len(steps) > 1 {
		return ErrIllegalDefaultStep.WithDetails(map[string]interface{}{
			"mode":               n.Name().String(),
			"default_step_index": defaultIndex,
			"reason":             "default step is a completion step",
		})
	}
	return nil
}
