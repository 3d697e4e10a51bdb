package wizard

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// State is the single source of truth of one wizard flow. It owns the ordered
// step collection, the current and default indexes and the active navigation mode.
//
// Transitions, resets, re-initialisation and mode swaps are serialised by a
// transition lock. Guards and listeners run while that lock is held: they may
// read the State but must not call its mutators.
type State struct {
	// turn is the transition lock; a buffered channel so waiting honours ctx
	turn chan struct{}
	mu   sync.RWMutex

	steps                []*Step
	currentIndex         int
	defaultIndex         int
	disableNavigationBar bool
	completed            bool
	initialized          bool
	mode                 NavigationMode

	last        *Transition
	transitions atomic.Uint64

	subscribers []subscription
	nextSubID   int

	logger *slog.Logger
}

// Option configures a State
type Option func(*State)

// WithLogger sets the logger used for transition diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewState creates an empty, uninitialised State
func NewState(opts ...Option) *State {
	s := &State{
		turn:         make(chan struct{}, 1),
		currentIndex: -1,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mode = NewNavigationMode(ModeStrict, s)
	return s
}

// Initialize binds the step collection and configuration. The first call sets
// the current index to defaultIndex without selecting anything; call Reset on
// the navigation mode to enter the default step. Later calls keep the current
// step by identity (see Reconcile).
func (s *State) Initialize(steps []*Step, navigationMode string, defaultIndex int, disableNavigationBar bool) {
	s.lock()
	defer s.unlock()

	next := append([]*Step(nil), steps...)

	s.mu.Lock()
	old := s.steps
	oldIndex := s.currentIndex
	wasInitialized := s.initialized

	s.steps = next
	s.defaultIndex = defaultIndex
	s.disableNavigationBar = disableNavigationBar
	s.initialized = true
	if !wasInitialized {
		s.currentIndex = defaultIndex
	} else {
		s.currentIndex = Reconcile(old, next, oldIndex, defaultIndex)
	}
	newIndex := s.currentIndex
	s.mu.Unlock()

	mode := NewNavigationMode(ModeName(navigationMode), s)
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	if !wasInitialized {
		return
	}

	var previous *Step
	if oldIndex >= 0 && oldIndex < len(old) {
		previous = old[oldIndex]
	}
	wasSelected := previous != nil && previous.IsSelected()
	for _, st := range old {
		if indexOf(next, st) < 0 {
			st.setSelected(false)
		}
	}
	if previous == nil || indexOf(next, previous) < 0 {
		// The fallback step has not been entered, so the flow is not completed.
		s.setCompleted(false)
	}
	if wasSelected && indexOf(next, previous) < 0 && newIndex >= 0 {
		// The current step was removed: select the fallback so exactly one step stays selected.
		next[newIndex].setSelected(true)
		s.logger.Info("current step removed, falling back",
			"from", oldIndex, "to", newIndex, "mode", mode.Name())
	}
}

// NavigationMode returns the active navigation policy
func (s *State) NavigationMode() NavigationMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetNavigationMode swaps the active policy. It waits for any running
// transition and does not move the current step.
func (s *State) SetNavigationMode(name string) NavigationMode {
	s.lock()
	defer s.unlock()

	mode := NewNavigationMode(ModeName(name), s)
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	s.logger.Debug("navigation mode swapped", "mode", mode.Name())
	return mode
}

// Steps returns a copy of the ordered step collection
func (s *State) Steps() []*Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Step(nil), s.steps...)
}

// Len returns the number of steps
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.steps)
}

// CurrentStepIndex returns the current index, or -1 before initialisation
func (s *State) CurrentStepIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentIndex
}

// DefaultStepIndex returns the index used by Reset
func (s *State) DefaultStepIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultIndex
}

// IsNavigationBarDisabled returns the flag consumed by navigation bars
func (s *State) IsNavigationBarDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disableNavigationBar
}

// IsCompleted returns true while a completion step is current and entered
func (s *State) IsCompleted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed
}

// HasStep returns true if index addresses a step
func (s *State) HasStep(index int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasStepLocked(index)
}

func (s *State) hasStepLocked(index int) bool {
	return index >= 0 && index < len(s.steps)
}

// HasNextStep returns true if a step follows the current one
func (s *State) HasNextStep() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentIndex < len(s.steps)-1
}

// HasPreviousStep returns true if a step precedes the current one
func (s *State) HasPreviousStep() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentIndex > 0
}

// StepAt returns the step at index
func (s *State) StepAt(index int) (*Step, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasStepLocked(index) {
		return nil, ErrIndexOutOfRange.WithDetails(map[string]interface{}{
			"index": index,
			"len":   len(s.steps),
		})
	}
	return s.steps[index], nil
}

// CurrentStep returns the step at the current index
func (s *State) CurrentStep() (*Step, error) {
	return s.StepAt(s.CurrentStepIndex())
}

// IndexOfStep finds step by identity
func (s *State) IndexOfStep(step *Step) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.steps, step); i >= 0 {
		return i, nil
	}
	details := map[string]interface{}{}
	if step != nil {
		details["title"] = step.Title()
	}
	return -1, ErrStepNotFound.WithDetails(details)
}

// IndexOfStepWithID finds the first step carrying id
func (s *State) IndexOfStepWithID(id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, st := range s.steps {
		if st.ID() == id {
			return i, nil
		}
	}
	return -1, ErrStepNotFound.WithDetails(map[string]interface{}{"id": id})
}

// MovingDirection compares destination with the current index
func (s *State) MovingDirection(destination int) MovingDirection {
	return directionBetween(s.CurrentStepIndex(), destination)
}

// Subscribe registers fn for every step entry and exit. The returned
// function removes the subscription.
func (s *State) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// LastTransition returns the outcome of the most recent transition request
func (s *State) LastTransition() (Transition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return Transition{}, false
	}
	return *s.last, true
}

// Transitions returns the number of accepted transitions since creation
func (s *State) Transitions() uint64 {
	return s.transitions.Load()
}

func (s *State) lock() {
	s.turn <- struct{}{}
}

// lockContext waits for the transition lock until ctx is done.
func (s *State) lockContext(ctx context.Context) error {
	select {
	case s.turn <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *State) unlock() {
	<-s.turn
}

func (s *State) setCurrentIndex(index int) {
	s.mu.Lock()
	s.currentIndex = index
	s.mu.Unlock()
}

func (s *State) setCompleted(completed bool) {
	s.mu.Lock()
	s.completed = completed
	s.mu.Unlock()
}

func (s *State) recordTransition(t Transition) {
	s.mu.Lock()
	s.last = &t
	s.mu.Unlock()
	if t.Accepted {
		s.transitions.Inc()
	}
}

// enterStep fires the step's listeners, then the flow-wide subscribers.
func (s *State) enterStep(index int, step *Step, direction MovingDirection) {
	step.Enter(direction)
	s.publish(Event{Type: EventEntered, StepIndex: index, StepID: step.ID(), Direction: direction})
}

func (s *State) exitStep(index int, step *Step, direction MovingDirection) {
	step.Exit(direction)
	s.publish(Event{Type: EventExited, StepIndex: index, StepID: step.ID(), Direction: direction})
}

func (s *State) publish(e Event) {
	s.mu.RLock()
	subs := append([]subscription(nil), s.subscribers...)
	s.mu.RUnlock()
	for _, sub := range subs {
		sub.fn(e)
	}
}

func indexOf(steps []*Step, step *Step) int {
	if step == nil {
		return -1
	}
	for i, st := range steps {
		if st == step {
			return i
		}
	}
	return -1
}
