package wizard

// StepSnapshot is a point-in-time copy of one step
type StepSnapshot struct {
	Index            int      `json:"index" yaml:"index"`
	ID               string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string   `json:"title" yaml:"title"`
	NavigationSymbol string   `json:"navigation_symbol,omitempty" yaml:"navigation_symbol,omitempty"`
	Kind             StepKind `json:"kind" yaml:"kind"`
	Optional         bool     `json:"optional" yaml:"optional"`
	DefaultSelected  bool     `json:"default_selected" yaml:"default_selected"`
	Completed        bool     `json:"completed" yaml:"completed"`
	Selected         bool     `json:"selected" yaml:"selected"`
	// ModeNavigable is the raw answer of NavigationMode.IsNavigable
	ModeNavigable bool `json:"mode_navigable" yaml:"mode_navigable"`
}

// Snapshot is a point-in-time copy of the whole flow
type Snapshot struct {
	CurrentStepIndex      int            `json:"current_step_index" yaml:"current_step_index"`
	DefaultStepIndex      int            `json:"default_step_index" yaml:"default_step_index"`
	Completed             bool           `json:"completed" yaml:"completed"`
	NavigationBarDisabled bool           `json:"navigation_bar_disabled" yaml:"navigation_bar_disabled"`
	NavigationMode        ModeName       `json:"navigation_mode" yaml:"navigation_mode"`
	Transitions           uint64         `json:"transitions" yaml:"transitions"`
	Steps                 []StepSnapshot `json:"steps" yaml:"steps"`
}

// Snapshot copies the current state. It waits for a running transition so
// the copy is never taken halfway through one, which means it must not be
// called from guards or listeners.
func (s *State) Snapshot() Snapshot {
	s.lock()
	defer s.unlock()

	mode := s.NavigationMode()
	steps := s.Steps()
	snap := Snapshot{
		CurrentStepIndex:      s.CurrentStepIndex(),
		DefaultStepIndex:      s.DefaultStepIndex(),
		Completed:             s.IsCompleted(),
		NavigationBarDisabled: s.IsNavigationBarDisabled(),
		NavigationMode:        mode.Name(),
		Transitions:           s.Transitions(),
		Steps:                 make([]StepSnapshot, 0, len(steps)),
	}
	for i, step := range steps {
		snap.Steps = append(snap.Steps, StepSnapshot{
			Index:            i,
			ID:               step.ID(),
			Title:            step.Title(),
			NavigationSymbol: step.NavigationSymbol(),
			Kind:             step.Kind(),
			Optional:         step.IsOptional(),
			DefaultSelected:  step.IsDefaultSelected(),
			Completed:        step.IsCompleted(),
			Selected:         step.IsSelected(),
			ModeNavigable:    mode.IsNavigable(i),
		})
	}
	return snap
}
