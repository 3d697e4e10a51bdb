package wizard

import (
	"errors"
	"fmt"
)

// Error represents a misconfiguration of the wizard. These errors are never
// treated as a guard denial; they always reach the caller.
type Error struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e Error) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s %v", e.Code, e.Message, e.Details)
}

// Is reports whether target carries the same code, so errors.Is works against
// the sentinels below regardless of attached details.
func (e Error) Is(target error) bool {
	var other Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// Common wizard errors
var (
	// ErrInvalidGuardType indicates a canEnter/canExit value that is neither a boolean nor a predicate
	ErrInvalidGuardType = Error{
		Code:    "INVALID_GUARD_TYPE",
		Message: "Guard is neither a boolean nor a predicate",
	}

	// ErrIndexOutOfRange indicates a lookup with an index outside the step collection
	ErrIndexOutOfRange = Error{
		Code:    "INDEX_OUT_OF_RANGE",
		Message: "Step index is out of range",
	}

	// ErrStepNotFound indicates a lookup for a step that is not part of the collection
	ErrStepNotFound = Error{
		Code:    "STEP_NOT_FOUND",
		Message: "Step is not part of the wizard",
	}

	// ErrNoSuchDefaultStep indicates a reset with a default index outside the collection
	ErrNoSuchDefaultStep = Error{
		Code:    "NO_SUCH_DEFAULT_STEP",
		Message: "The wizard has no step at the default step index",
	}

	// ErrIllegalDefaultStep indicates a default step the navigation mode does not allow
	ErrIllegalDefaultStep = Error{
		Code:    "ILLEGAL_DEFAULT_STEP",
		Message: "The default step is not allowed by the navigation mode",
	}

	// ErrInvalidDestination indicates a destination that cannot be resolved to an index
	ErrInvalidDestination = Error{
		Code:    "INVALID_DESTINATION",
		Message: "Destination cannot be resolved to a step index",
	}
)

// NewError creates a new wizard error with details
func NewError(code, message string, details map[string]interface{}) Error {
	return Error{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// WithDetails adds details to an existing error
func (e Error) WithDetails(details map[string]interface{}) Error {
	e.Details = details
	return e
}

// IsProgrammerError reports whether err is (or wraps) a wizard Error.
func IsProgrammerError(err error) bool {
	var wizErr Error
	return errors.As(err, &wizErr)
}

// IsInvalidGuardType checks if the error is an invalid guard type error
func IsInvalidGuardType(err error) bool {
	return errors.Is(err, ErrInvalidGuardType)
}

// IsIndexOutOfRange checks if the error is an index out of range error
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsStepNotFound checks if the error is a step not found error
func IsStepNotFound(err error) bool {
	return errors.Is(err, ErrStepNotFound)
}

// IsNoSuchDefaultStep checks if the error is a missing default step error
func IsNoSuchDefaultStep(err error) bool {
	return errors.Is(err, ErrNoSuchDefaultStep)
}

// IsIllegalDefaultStep checks if the error is an illegal default step error
func IsIllegalDefaultStep(err error) bool {
	return errors.Is(err, ErrIllegalDefaultStep)
}

// IsInvalidDestination checks if the error is an invalid destination error
func IsInvalidDestination(err error) bool {
	return errors.Is(err, ErrInvalidDestination)
}
