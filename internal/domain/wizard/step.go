package wizard

import (
	"context"
	"sync"
)

// StepKind distinguishes ordinary steps from completion steps
type StepKind string

const (
	StepKindNormal     StepKind = "normal"
	StepKindCompletion StepKind = "completion"
)

// String returns the string representation of the kind
func (k StepKind) String() string {
	return string(k)
}

// StepListener is notified with the direction of an enter or exit
type StepListener func(direction MovingDirection)

// Step holds the runtime state of one wizard step. It is a passive record:
// selection and completion are changed by the navigation mode of the owning State.
type Step struct {
	mu sync.RWMutex

	id               string
	title            string
	navigationSymbol string
	kind             StepKind

	optional        bool
	defaultSelected bool
	completed       bool
	selected        bool

	canEnter Guard
	canExit  Guard

	enterListeners []StepListener
	exitListeners  []StepListener
}

// StepOption configures a Step at construction
type StepOption func(*Step)

// WithID sets the step identifier used by ByStepID destinations
func WithID(id string) StepOption {
	return func(s *Step) { s.id = id }
}

// WithNavigationSymbol sets the symbol shown by a navigation bar
func WithNavigationSymbol(symbol string) StepOption {
	return func(s *Step) { s.navigationSymbol = symbol }
}

// WithOptional marks the step as optional
func WithOptional(optional bool) StepOption {
	return func(s *Step) { s.optional = optional }
}

// WithDefaultSelected marks the step as the advisory default
func WithDefaultSelected(selected bool) StepOption {
	return func(s *Step) { s.defaultSelected = selected }
}

// WithCanEnter sets the entry guard
func WithCanEnter(g Guard) StepOption {
	return func(s *Step) { s.canEnter = g }
}

// WithCanExit sets the exit guard
func WithCanExit(g Guard) StepOption {
	return func(s *Step) { s.canExit = g }
}

// WithEnterListener registers a listener for entries
func WithEnterListener(l StepListener) StepOption {
	return func(s *Step) { s.enterListeners = append(s.enterListeners, l) }
}

// WithExitListener registers a listener for exits
func WithExitListener(l StepListener) StepOption {
	return func(s *Step) { s.exitListeners = append(s.exitListeners, l) }
}

// NewStep creates an ordinary step. Guards default to Fixed(true).
func NewStep(title string, opts ...StepOption) *Step {
	s := &Step{
		title:    title,
		kind:     StepKindNormal,
		canEnter: Fixed(true),
		canExit:  Fixed(true),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewCompletionStep creates a completion step. Its exit guard defaults to
// Fixed(false); use EnableBackLinks or WithCanExit to allow leaving it.
func NewCompletionStep(title string, opts ...StepOption) *Step {
	s := &Step{
		title:    title,
		kind:     StepKindCompletion,
		canEnter: Fixed(true),
		canExit:  Fixed(false),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Step) ID() string     { return s.id }
func (s *Step) Kind() StepKind { return s.kind }

func (s *Step) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

func (s *Step) NavigationSymbol() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.navigationSymbol
}

// SetPresentation replaces the title and navigation symbol
func (s *Step) SetPresentation(title, navigationSymbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
	s.navigationSymbol = navigationSymbol
}

// IsCompletionStep returns true for the completion variant
func (s *Step) IsCompletionStep() bool {
	return s.kind == StepKindCompletion
}

// IsOptional returns true if the step is exempt from completion prerequisites
func (s *Step) IsOptional() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.optional
}

// SetOptional changes the optional flag
func (s *Step) SetOptional(optional bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.optional = optional
}

// IsDefaultSelected returns the advisory default flag
func (s *Step) IsDefaultSelected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultSelected
}

// SetDefaultSelected changes the advisory default flag
func (s *Step) SetDefaultSelected(selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultSelected = selected
}

// IsCompleted returns true once the step has been exited
func (s *Step) IsCompleted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.completed
}

// IsSelected returns true if the step is the current step
func (s *Step) IsSelected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *Step) setCompleted(completed bool) {
	s.mu.Lock()
	s.completed = completed
	s.mu.Unlock()
}

func (s *Step) setSelected(selected bool) {
	s.mu.Lock()
	s.selected = selected
	s.mu.Unlock()
}

// CanEnter returns the entry guard
func (s *Step) CanEnter() Guard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canEnter
}

// CanExit returns the exit guard
func (s *Step) CanExit() Guard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canExit
}

// SetCanEnter replaces the entry guard; nil restores Fixed(true)
func (s *Step) SetCanEnter(g Guard) {
	if g == nil {
		g = Fixed(true)
	}
	s.mu.Lock()
	s.canEnter = g
	s.mu.Unlock()
}

// SetCanExit replaces the exit guard; nil restores Fixed(true)
func (s *Step) SetCanExit(g Guard) {
	if g == nil {
		g = Fixed(true)
	}
	s.mu.Lock()
	s.canExit = g
	s.mu.Unlock()
}

// EnableBackLinks allows a completion step to be left again.
// It has no effect on ordinary steps.
func (s *Step) EnableBackLinks() {
	if !s.IsCompletionStep() {
		return
	}
	s.SetCanExit(Fixed(true))
}

// CanEnterStep evaluates the entry guard for direction. The guard is read
// at call time and never cached.
func (s *Step) CanEnterStep(ctx context.Context, direction MovingDirection) (bool, error) {
	s.mu.RLock()
	g := s.canEnter
	s.mu.RUnlock()
	return evaluateGuard(ctx, g, direction)
}

// CanExitStep evaluates the exit guard for direction
func (s *Step) CanExitStep(ctx context.Context, direction MovingDirection) (bool, error) {
	s.mu.RLock()
	g := s.canExit
	s.mu.RUnlock()
	return evaluateGuard(ctx, g, direction)
}

func evaluateGuard(ctx context.Context, g Guard, direction MovingDirection) (bool, error) {
	if g == nil {
		return true, nil
	}
	return g.Evaluate(ctx, direction)
}

// OnEnter registers a listener for entries
func (s *Step) OnEnter(l StepListener) {
	s.mu.Lock()
	s.enterListeners = append(s.enterListeners, l)
	s.mu.Unlock()
}

// OnExit registers a listener for exits
func (s *Step) OnExit(l StepListener) {
	s.mu.Lock()
	s.exitListeners = append(s.exitListeners, l)
	s.mu.Unlock()
}

// Enter notifies entry listeners
func (s *Step) Enter(direction MovingDirection) {
	s.mu.RLock()
	listeners := append([]StepListener(nil), s.enterListeners...)
	s.mu.RUnlock()
	for _, l := range listeners {
		l(direction)
	}
}

// Exit notifies exit listeners
func (s *Step) Exit(direction MovingDirection) {
	s.mu.RLock()
	listeners := append([]StepListener(nil), s.exitListeners...)
	s.mu.RUnlock()
	for _, l := range listeners {
		l(direction)
	}
}
