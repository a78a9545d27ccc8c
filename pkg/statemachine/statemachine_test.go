package statemachine_test

import (
	"testing"

	"github.com/dmitrymomot/vendkit/pkg/statemachine"
)

func TestStateMachine(t *testing.T) {
	t.Parallel()
	// Define states
	const (
		Idle    = statemachine.StringState("idle")
		Paid    = statemachine.StringState("paid")
		Vending = statemachine.StringState("vending")
	)

	// Define events
	const (
		Pay      = statemachine.StringEvent("pay")
		Vend     = statemachine.StringEvent("vend")
		Complete = statemachine.StringEvent("complete")
	)

	t.Run("Basic Transitions", func(t *testing.T) {
		t.Parallel()
		sm := statemachine.MustNew(Idle,
			statemachine.WithTransition(Idle, Paid, Pay),
			statemachine.WithTransition(Paid, Vending, Vend),
			statemachine.WithTransition(Vending, Idle, Complete),
		)

		if sm.Current() != Idle {
			t.Fatalf("Expected initial state to be %s, got %s", Idle, sm.Current())
		}

		if !sm.CanFire(Pay) {
			t.Fatal("Expected CanFire to return true for Pay event in Idle state")
		}

		if _, err := sm.Fire(Pay); err != nil {
			t.Fatalf("Failed to fire Pay event: %v", err)
		}

		if sm.Current() != Paid {
			t.Fatalf("Expected state to be %s, got %s", Paid, sm.Current())
		}

		if _, err := sm.Fire(Vend); err != nil {
			t.Fatalf("Failed to fire Vend event: %v", err)
		}

		if sm.Current() != Vending {
			t.Fatalf("Expected state to be %s, got %s", Vending, sm.Current())
		}

		sm.Reset()

		if sm.Current() != Idle {
			t.Fatalf("Expected state to be %s after reset, got %s", Idle, sm.Current())
		}
	})

	t.Run("Mealy Outputs", func(t *testing.T) {
		t.Parallel()
		sm := statemachine.MustNew(Idle,
			statemachine.WithTransition(Idle, Paid, Pay,
				statemachine.WithOutput("Payment accepted"),
			),
			statemachine.WithTransition(Paid, Vending, Vend),
		)

		out, err := sm.Fire(Pay)
		if err != nil {
			t.Fatalf("Failed to fire Pay event: %v", err)
		}
		if out != "Payment accepted" {
			t.Fatalf("Expected bespoke output, got %q", out)
		}

		// Transition without a bespoke output falls back to the generic message.
		out, err = sm.Fire(Vend)
		if err != nil {
			t.Fatalf("Failed to fire Vend event: %v", err)
		}
		if out != "Transitioned from paid to vending" {
			t.Fatalf("Expected generic fallback output, got %q", out)
		}
	})

	t.Run("Invalid Transition", func(t *testing.T) {
		t.Parallel()
		sm := statemachine.MustNew(Idle,
			statemachine.WithTransition(Idle, Paid, Pay),
		)

		_, err := sm.Fire(Vend)
		if !statemachine.IsNoTransitionError(err) {
			t.Fatalf("Expected NoTransitionError, got: %v", err)
		}

		// State must be unchanged after a failed fire.
		if sm.Current() != Idle {
			t.Fatalf("Expected state to remain %s, got %s", Idle, sm.Current())
		}

		if sm.CanFire(Vend) {
			t.Fatal("Expected CanFire to return false for undefined transition")
		}
	})

	t.Run("Duplicate Transition", func(t *testing.T) {
		t.Parallel()
		_, err := statemachine.New(Idle,
			statemachine.WithTransition(Idle, Paid, Pay),
			statemachine.WithTransition(Idle, Vending, Pay),
		)
		if err == nil {
			t.Fatal("Expected error when registering a duplicate state/event pair")
		}
	})

	t.Run("Available Events", func(t *testing.T) {
		t.Parallel()
		sm := statemachine.MustNew(Idle,
			statemachine.WithTransition(Idle, Paid, Pay),
			statemachine.WithTransition(Paid, Vending, Vend),
			statemachine.WithTransition(Paid, Idle, Complete),
		)

		events := sm.AvailableEvents()
		if len(events) != 1 || events[0] != Pay {
			t.Fatalf("Expected [pay] from Idle, got %v", events)
		}

		events = sm.EventsFor(Paid)
		if len(events) != 2 || events[0] != Vend || events[1] != Complete {
			t.Fatalf("Expected [vend complete] from Paid in registration order, got %v", events)
		}

		if got := sm.EventsFor(Vending); len(got) != 0 {
			t.Fatalf("Expected no events for state without outgoing transitions, got %v", got)
		}
	})

	t.Run("SetState Override", func(t *testing.T) {
		t.Parallel()
		sm := statemachine.MustNew(Idle,
			statemachine.WithTransition(Idle, Paid, Pay),
		)

		sm.SetState(Vending)
		if sm.Current() != Vending {
			t.Fatalf("Expected forced state %s, got %s", Vending, sm.Current())
		}

		// SetState bypasses the table entirely, even for unreachable states.
		if sm.CanFire(Pay) {
			t.Fatal("Expected no transitions from forced state")
		}
	})

	t.Run("WithTransitions Batch", func(t *testing.T) {
		t.Parallel()
		sm, err := statemachine.New(Idle,
			statemachine.WithTransitions([]statemachine.TransitionDef{
				{From: Idle, To: Paid, Event: Pay, Output: "Payment accepted"},
				{From: Paid, To: Idle, Event: Complete},
			}),
		)
		if err != nil {
			t.Fatalf("Failed to build machine from transition defs: %v", err)
		}

		out, err := sm.Fire(Pay)
		if err != nil {
			t.Fatalf("Failed to fire Pay event: %v", err)
		}
		if out != "Payment accepted" {
			t.Fatalf("Expected bespoke output, got %q", out)
		}
	})

	t.Run("Nil Safety", func(t *testing.T) {
		t.Parallel()
		if _, err := statemachine.New(nil); err == nil {
			t.Fatal("Expected error for nil initial state")
		}

		sm := statemachine.MustNew(Idle)
		if _, err := sm.Fire(nil); err == nil {
			t.Fatal("Expected error when firing nil event")
		}
		if sm.CanFire(nil) {
			t.Fatal("Expected CanFire to return false for nil event")
		}
	})
}
