package wizard

// SemiStrictMode allows free movement between ordinary steps, but a
// completion step can only be reached once every earlier step is completed,
// optional or selected.
type SemiStrictMode struct {
	navigator
}

// NewSemiStrictMode creates a semi-strict mode bound to s
func NewSemiStrictMode(s *State) *SemiStrictMode {
	m := &SemiStrictMode{}
	m.navigator = navigator{state: s, policy: m}
	return m
}

func (m *SemiStrictMode) name() ModeName { return ModeSemiStrict }

func (m *SemiStrictMode) prerequisitesMet(destination int) bool {
	step, err := m.state.StepAt(destination)
	if err != nil {
		return false
	}
	if !step.IsCompletionStep() {
		return true
	}
	return m.previousStepsDone(destination)
}

func (m *SemiStrictMode) invalidate(_, _ int) {}

func (m *SemiStrictMode) navigable(destination int) bool {
	return m.prerequisitesMet(destination)
}

func (m *SemiStrictMode) checkDefault(defaultIndex int) error {
	return m.completionDefaultAllowed(defaultIndex)
}
