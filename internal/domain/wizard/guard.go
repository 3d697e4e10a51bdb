package wizard

import (
	"context"
	"fmt"
)

// Guard decides whether a step may be entered or exited in a given direction.
// Implementations may block; they should honour ctx cancellation.
type Guard interface {
	Evaluate(ctx context.Context, direction MovingDirection) (bool, error)
}

// Fixed is a guard with a constant answer
type Fixed bool

// Evaluate returns the fixed value
func (f Fixed) Evaluate(_ context.Context, _ MovingDirection) (bool, error) {
	return bool(f), nil
}

// Predicate adapts a function to the Guard interface
type Predicate func(ctx context.Context, direction MovingDirection) (bool, error)

// Evaluate invokes the predicate
func (p Predicate) Evaluate(ctx context.Context, direction MovingDirection) (bool, error) {
	return p(ctx, direction)
}

// GuardFrom resolves a loosely typed guard value. Accepted values are bool,
// Guard, func(MovingDirection) bool and func(context.Context, MovingDirection) (bool, error).
// A nil value yields Fixed(true).
func GuardFrom(v interface{}) (Guard, error) {
	switch g := v.(type) {
	case nil:
		return Fixed(true), nil
	case bool:
		return Fixed(g), nil
	case Guard:
		return g, nil
	case func(MovingDirection) bool:
		return Predicate(func(_ context.Context, d MovingDirection) (bool, error) {
			return g(d), nil
		}), nil
	case func(context.Context, MovingDirection) (bool, error):
		return Predicate(g), nil
	default:
		return nil, ErrInvalidGuardType.WithDetails(map[string]interface{}{
			"type": fmt.Sprintf("%T", v),
		})
	}
}

// stage is one link of a sequential guard chain.
type stage func(ctx context.Context) (bool, error)

// evaluateChain runs stages left to right and stops at the first stage that
// answers false or fails. Stages never run concurrently.
func evaluateChain(ctx context.Context, stages ...stage) (bool, error) {
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		ok, err := s(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
