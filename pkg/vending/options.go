package vending

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/payment"
)

// Option configures a Machine during construction.
type Option func(*Machine)

// WithID sets the machine identifier. A random one is generated by default.
func WithID(id uuid.UUID) Option {
	return func(m *Machine) {
		m.id = id
	}
}

// WithInventory sets the catalog the machine vends from. Passing the same
// service to several machines makes them share stock.
func WithInventory(svc *inventory.Service) Option {
	return func(m *Machine) {
		if svc != nil {
			m.inventory = svc
		}
	}
}

// WithPaymentProcessor sets the balance ledger. Each machine needs its own
// processor; sharing one across machines would mix balances.
func WithPaymentProcessor(proc *payment.Processor) Option {
	return func(m *Machine) {
		if proc != nil {
			m.payment = proc
		}
	}
}

// WithDenominations configures the accepted coin set on a fresh processor.
func WithDenominations(denominations ...payment.Cents) Option {
	return func(m *Machine) {
		m.payment = payment.New(payment.WithDenominations(denominations...))
	}
}

// WithLogger sets the structured logger. Logging is discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}

// WithClock sets the time source used for transaction timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		if now != nil {
			m.now = now
		}
	}
}
