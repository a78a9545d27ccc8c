package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition   = errors.New("invalid transition: from, to, or event cannot be nil")
	ErrInvalidEvent        = errors.New("invalid event: event cannot be nil")
	ErrDuplicateTransition = errors.New("duplicate transition: state/event pair already defined")
)

// NoTransitionError indicates no transition is defined for the given
// state/event combination. The machine state is left unchanged.
type NoTransitionError struct {
	StateName string
	EventName string
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.StateName, e.EventName)
}

func NewNoTransitionError(stateName, eventName string) *NoTransitionError {
	return &NoTransitionError{
		StateName: stateName,
		EventName: eventName,
	}
}

func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}
