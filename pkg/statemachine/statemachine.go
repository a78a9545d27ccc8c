package statemachine

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// Transition defines a state change triggered by an event. The Output is the
// Mealy output emitted when the transition fires: it depends on the state
// being left and the triggering event, not on the state being entered.
type Transition struct {
	From   State
	To     State
	Event  Event
	Output string // Empty output falls back to a generic message on fire
}

// StateMachine defines the core Mealy machine operations.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event, output string) error
	Fire(event Event) (string, error)
	CanFire(event Event) bool
	AvailableEvents() []Event
	EventsFor(state State) []Event
	SetState(state State)
	Reset()
}

// StringState provides a simple string-based state implementation for basic use cases.
type StringState string

func (s StringState) Name() string {
	return string(s)
}

// StringEvent provides a simple string-based event implementation for basic use cases.
type StringEvent string

func (e StringEvent) Name() string {
	return string(e)
}
