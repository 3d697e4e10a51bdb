package workflow

import (
	"context"
	"sort"
	"sync"

	"github.com/YoshitsuguKoike/wizardnav/internal/domain/wizard"
)

// Names of the guards every default registry knows
const (
	GuardAlways       = "always"
	GuardNever        = "never"
	GuardForwardOnly  = "forward-only"
	GuardBackwardOnly = "backward-only"
)

// GuardRegistry maps guard names used in definitions to guard implementations
type GuardRegistry struct {
	mu     sync.RWMutex
	guards map[string]wizard.Guard
}

// NewGuardRegistry creates an empty guard registry
func NewGuardRegistry() *GuardRegistry {
	return &GuardRegistry{
		guards: make(map[string]wizard.Guard),
	}
}

// NewDefaultGuardRegistry creates a registry holding the built-in guards
func NewDefaultGuardRegistry() *GuardRegistry {
	r := NewGuardRegistry()
	r.Register(GuardAlways, wizard.Fixed(true))
	r.Register(GuardNever, wizard.Fixed(false))
	r.Register(GuardForwardOnly, wizard.Predicate(func(_ context.Context, d wizard.MovingDirection) (bool, error) {
		return d != wizard.Backwards, nil
	}))
	r.Register(GuardBackwardOnly, wizard.Predicate(func(_ context.Context, d wizard.MovingDirection) (bool, error) {
		return d != wizard.Forwards, nil
	}))
	return r
}

// Register registers a guard under name, replacing any previous one
func (r *GuardRegistry) Register(name string, g wizard.Guard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guards[name] = g
}

// Get retrieves the guard registered under name
func (r *GuardRegistry) Get(name string) (wizard.Guard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, exists := r.guards[name]
	return g, exists
}

// Names returns the registered names in sorted order
func (r *GuardRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.guards))
	for name := range r.guards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GuardNotFoundError is returned when a definition names an unregistered guard
type GuardNotFoundError struct {
	Name string
}

func (e *GuardNotFoundError) Error() string {
	return "no guard registered with name: " + e.Name
}

// resolveGuard turns a definition value into a guard. Strings are looked up
// in the registry; everything else goes through wizard.GuardFrom.
func resolveGuard(v interface{}, registry *GuardRegistry) (wizard.Guard, error) {
	name, ok := v.(string)
	if !ok {
		return wizard.GuardFrom(v)
	}
	if registry != nil {
		if g, exists := registry.Get(name); exists {
			return g, nil
		}
	}
	return nil, &GuardNotFoundError{Name: name}
}
