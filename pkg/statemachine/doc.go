// Package statemachine provides a thread-safe implementation of the
// Mealy-machine pattern: a finite state machine whose outputs depend on both
// the current state and the triggering event.
//
// The package revolves around two minimal interfaces – State and Event – that
// give you full freedom to model domain specific states and events while the
// library handles:
//  1. Transition validation and lookup
//  2. Mealy output selection per (state, event) pair
//  3. Concurrency-safe access to current state and transition map
//
// Ready-made helpers such as StringState and StringEvent let you get started
// quickly for simple scenarios, while custom struct types can satisfy the
// interfaces when additional data is required.
//
// # Architecture
//
// The MealyMachine implementation uses an in-memory nested map structure
// map[FromState][Event]Transition for O(1) lookups and guards all access with
// a RWMutex. Each state/event pair maps to exactly one transition, so the
// table is a partial function and a duplicate registration fails fast.
// Configuration uses the functional options pattern.
//
// # Usage
//
//	import "github.com/dmitrymomot/vendkit/pkg/statemachine"
//
//	const (
//	    Locked   = statemachine.StringState("locked")
//	    Unlocked = statemachine.StringState("unlocked")
//	    Push     = statemachine.StringEvent("push")
//	    Coin     = statemachine.StringEvent("coin")
//	)
//
//	machine := statemachine.MustNew(Locked,
//	    statemachine.WithTransition(Locked, Unlocked, Coin,
//	        statemachine.WithOutput("Unlocking turnstile")),
//	    statemachine.WithTransition(Unlocked, Locked, Push),
//	)
//
//	out, err := machine.Fire(Coin) // out == "Unlocking turnstile"
//
// Transitions registered without a bespoke output fall back to a generic
// "Transitioned from X to Y" message when fired.
//
// # Error Handling
//
// A Fire on an undefined state/event pair leaves the state unchanged and
// returns *NoTransitionError, which can be detected with IsNoTransitionError.
//
// # Concurrency
//
// MealyMachine uses a RWMutex, making read operations (Current, CanFire,
// AvailableEvents) cheap while serializing mutations (AddTransition, Fire,
// SetState, Reset).
package statemachine
