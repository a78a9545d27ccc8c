package vending

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart indicates a purchase was attempted with nothing in the cart
	ErrEmptyCart = errors.New("vending.empty_cart")

	// ErrOutOfStockAtCommit indicates a cart entry lost its last unit between
	// selection and commit; the whole purchase fails with no mutation
	ErrOutOfStockAtCommit = errors.New("vending.out_of_stock_at_commit")
)

// InvalidTransitionError indicates an action that is illegal for the current
// machine state, either from the transition table or from a workflow
// precondition. The session is left unchanged.
type InvalidTransitionError struct {
	State  string
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot perform '%s' from state '%s'", e.Action, e.State)
}

func newInvalidTransitionError(state, action string) *InvalidTransitionError {
	return &InvalidTransitionError{
		State:  state,
		Action: action,
	}
}

func IsInvalidTransitionError(err error) bool {
	var e *InvalidTransitionError
	return errors.As(err, &e)
}
