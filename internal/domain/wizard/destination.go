package wizard

// Destination is a transition target that is resolved to a step index
// against the State at call time.
type Destination interface {
	resolve(s *State) (int, error)
}

type indexDestination int

func (d indexDestination) resolve(_ *State) (int, error) {
	return int(d), nil
}

type offsetDestination int

func (d offsetDestination) resolve(s *State) (int, error) {
	return s.CurrentStepIndex() + int(d), nil
}

type stepDestination struct {
	step *Step
}

func (d stepDestination) resolve(s *State) (int, error) {
	i, err := s.IndexOfStep(d.step)
	if err != nil {
		return -1, ErrInvalidDestination.WithDetails(map[string]interface{}{"cause": err.Error()})
	}
	return i, nil
}

type idDestination string

func (d idDestination) resolve(s *State) (int, error) {
	i, err := s.IndexOfStepWithID(string(d))
	if err != nil {
		return -1, ErrInvalidDestination.WithDetails(map[string]interface{}{"id": string(d)})
	}
	return i, nil
}

// ToIndex targets an absolute index. Out of range indexes resolve fine and
// are rejected by the transition itself.
func ToIndex(index int) Destination { return indexDestination(index) }

// ByOffset targets a position relative to the current step
func ByOffset(offset int) Destination { return offsetDestination(offset) }

// ToStep targets a step by identity
func ToStep(step *Step) Destination { return stepDestination{step: step} }

// ByStepID targets the first step with the given id
func ByStepID(id string) Destination { return idDestination(id) }

// ResolveDestination turns d into a step index
func (s *State) ResolveDestination(d Destination) (int, error) {
	if d == nil {
		return -1, ErrInvalidDestination.WithDetails(map[string]interface{}{"destination": nil})
	}
	return d.resolve(s)
}
