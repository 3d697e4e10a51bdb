package wizard

// ModeName names a navigation mode
type ModeName string

const (
	ModeStrict     ModeName = "strict"
	ModeSemiStrict ModeName = "semi-strict"
	ModeFree       ModeName = "free"
)

// String returns the string representation of the mode name
func (m ModeName) String() string {
	return string(m)
}

// NewNavigationMode creates the mode for name bound to s.
// Unknown names, including the empty string, fall back to strict.
func NewNavigationMode(name ModeName, s *State) NavigationMode {
	switch name {
	case ModeFree:
		return NewFreeMode(s)
	case ModeSemiStrict:
		return NewSemiStrictMode(s)
	default:
		return NewStrictMode(s)
	}
}
