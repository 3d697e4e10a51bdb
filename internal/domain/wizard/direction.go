package wizard

// MovingDirection describes how a transition moves relative to the current step
type MovingDirection string

const (
	Forwards  MovingDirection = "forwards"
	Backwards MovingDirection = "backwards"
	Stay      MovingDirection = "stay"
)

// String returns the string representation of the direction
func (d MovingDirection) String() string {
	return string(d)
}

// IsValid returns true if the direction is one of the known values
func (d MovingDirection) IsValid() bool {
	switch d {
	case Forwards, Backwards, Stay:
		return true
	default:
		return false
	}
}

// directionBetween compares a destination against the current index.
func directionBetween(current, destination int) MovingDirection {
	switch {
	case destination > current:
		return Forwards
	case destination < current:
		return Backwards
	default:
		return Stay
	}
}
