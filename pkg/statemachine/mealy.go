package statemachine

import (
	"fmt"
	"sync"
)

// MealyMachine provides a thread-safe in-memory Mealy machine implementation.
// Transitions are stored in a nested map keyed by state then event for O(1)
// lookups; per-state event order is preserved for deterministic listings.
type MealyMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string]Transition
	eventOrder   map[string][]Event
	mu           sync.RWMutex
}

func newMealyMachine(initialState State) *MealyMachine {
	return &MealyMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string]Transition),
		eventOrder:   make(map[string][]Event),
	}
}

func (sm *MealyMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

// AddTransition registers a transition. Each state/event pair maps to at most
// one transition: the table is a partial function, and redefining a pair is a
// configuration error.
func (sm *MealyMachine) AddTransition(from, to State, event Event, output string) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	fromName := from.Name()
	eventName := event.Name()

	if _, ok := sm.transitions[fromName]; !ok {
		sm.transitions[fromName] = make(map[string]Transition)
	}
	if _, exists := sm.transitions[fromName][eventName]; exists {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateTransition, fromName, eventName)
	}

	sm.transitions[fromName][eventName] = Transition{
		From:   from,
		To:     to,
		Event:  event,
		Output: output,
	}
	sm.eventOrder[fromName] = append(sm.eventOrder[fromName], event)
	return nil
}

// Fire attempts the transition for the current state and the given event.
// On success the machine moves to the target state and the transition's Mealy
// output is returned; transitions registered without a bespoke output fall
// back to a generic message. On a table miss the state is unchanged and a
// *NoTransitionError is returned.
func (sm *MealyMachine) Fire(event Event) (string, error) {
	if event == nil {
		return "", ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	currentName := sm.currentState.Name()
	eventName := event.Name()

	t, ok := sm.transitions[currentName][eventName]
	if !ok {
		return "", NewNoTransitionError(currentName, eventName)
	}

	output := t.Output
	if output == "" {
		output = fmt.Sprintf("Transitioned from %s to %s", currentName, t.To.Name())
	}

	sm.currentState = t.To
	return output, nil
}

func (sm *MealyMachine) CanFire(event Event) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, ok := sm.transitions[sm.currentState.Name()][event.Name()]
	return ok
}

// AvailableEvents returns the events with a transition defined from the
// current state, in registration order. The slice is a copy.
func (sm *MealyMachine) AvailableEvents() []Event {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.eventsForLocked(sm.currentState)
}

// EventsFor returns the events with a transition defined from the given state.
func (sm *MealyMachine) EventsFor(state State) []Event {
	if state == nil {
		return []Event{}
	}
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.eventsForLocked(state)
}

func (sm *MealyMachine) eventsForLocked(state State) []Event {
	order := sm.eventOrder[state.Name()]
	events := make([]Event, len(order))
	copy(events, order)
	return events
}

// SetState forces the machine into the given state, bypassing the transition
// table. Intended for administrative resets only.
func (sm *MealyMachine) SetState(state State) {
	if state == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = state
}

func (sm *MealyMachine) Reset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
}
