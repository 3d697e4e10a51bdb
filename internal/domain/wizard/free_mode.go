package wizard

// FreeMode allows any transition the step guards allow
type FreeMode struct {
	navigator
}

// NewFreeMode creates a free mode bound to s
func NewFreeMode(s *State) *FreeMode {
	m := &FreeMode{}
	m.navigator = navigator{state: s, policy: m}
	return m
}

func (m *FreeMode) name() ModeName { return ModeFree }

func (m *FreeMode) prerequisitesMet(_ int) bool { return true }

func (m *FreeMode) invalidate(_, _ int) {}

func (m *FreeMode) navigable(_ int) bool { return true }

func (m *FreeMode) checkDefault(defaultIndex int) error {
	return m.completionDefaultAllowed(defaultIndex)
}
