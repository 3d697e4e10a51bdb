package wizard

// EventType identifies a step lifecycle notification
type EventType string

const (
	EventEntered EventType = "entered"
	EventExited  EventType = "exited"
)

// String returns the string representation of the event type
func (t EventType) String() string {
	return string(t)
}

// Event is delivered to State subscribers for every step entry and exit
type Event struct {
	Type      EventType
	StepIndex int
	StepID    string
	Direction MovingDirection
}

// Transition records the outcome of the most recent transition request
type Transition struct {
	From      int
	To        int
	Direction MovingDirection
	Accepted  bool
}

type subscription struct {
	id int
	fn func(Event)
}
