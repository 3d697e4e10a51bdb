package wizard

// StrictMode only allows moving to a step once every earlier step, except the
// current one, is completed or optional. Moving backwards invalidates the
// completion of all later steps.
type StrictMode struct {
	navigator
}

// NewStrictMode creates a strict mode bound to s
func NewStrictMode(s *State) *StrictMode {
	m := &StrictMode{}
	m.navigator = navigator{state: s, policy: m}
	return m
}

func (m *StrictMode) name() ModeName { return ModeStrict }

// The current step is skipped: it is marked completed on exit anyway.
func (m *StrictMode) prerequisitesMet(destination int) bool {
	current := m.state.CurrentStepIndex()
	steps := m.state.Steps()
	for i := 0; i < destination && i < len(steps); i++ {
		if i == current {
			continue
		}
		if !steps[i].IsCompleted() && !steps[i].IsOptional() {
			return false
		}
	}
	return true
}

func (m *StrictMode) invalidate(current, destination int) {
	if destination >= current {
		return
	}
	steps := m.state.Steps()
	for i := destination + 1; i < len(steps); i++ {
		steps[i].setCompleted(false)
	}
}

func (m *StrictMode) navigable(destination int) bool {
	return destination < m.state.CurrentStepIndex()
}

func (m *StrictMode) checkDefault(defaultIndex int) error {
	steps := m.state.Steps()
	for i := 0; i < defaultIndex; i++ {
		if !steps[i].IsOptional() {
			return ErrIllegalDefaultStep.WithDetails(map[string]interface{}{
				"mode":               ModeStrict.String(),
				"default_step_index": defaultIndex,
				"blocking_step":      i,
				"reason":             "a step before the default step is not optional",
			})
		}
	}
	return nil
}
