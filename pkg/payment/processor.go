package payment

import (
	"fmt"
	"slices"
)

// DefaultDenominations are the coin values accepted out of the box:
// 0.25, 0.50, 1.00 and 2.00 in the deployment's currency unit.
var DefaultDenominations = []Cents{25, 50, 100, 200}

// Processor validates coins and keeps the balance ledger for a single vending
// session. It is not safe for concurrent use on its own: the owning session
// serializes all access within its critical section.
type Processor struct {
	denominations []Cents
	balance       Cents
}

// New creates a payment processor with a zero balance.
func New(opts ...Option) *Processor {
	p := &Processor{}

	for _, opt := range opts {
		opt(p)
	}

	if len(p.denominations) == 0 {
		p.denominations = slices.Clone(DefaultDenominations)
	}
	slices.Sort(p.denominations)

	return p
}

// InsertCoin adds a coin to the balance and returns the new balance.
// Any value outside the accepted denomination set is rejected outright,
// including negatives, zero and near-miss fractional amounts.
func (p *Processor) InsertCoin(amount Cents) (Cents, error) {
	if !slices.Contains(p.denominations, amount) {
		return p.balance, fmt.Errorf("%w: %s (accepted: %s)", ErrInvalidCoin, amount, formatDenominations(p.denominations))
	}

	p.balance += amount
	return p.balance, nil
}

// Balance returns the current balance.
func (p *Processor) Balance() Cents {
	return p.balance
}

// SufficientBalance reports whether the balance covers the required amount.
func (p *Processor) SufficientBalance(required Cents) bool {
	return p.balance >= required
}

// Deduct subtracts the amount from the balance and returns the new balance.
// The balance is left unchanged on failure.
func (p *Processor) Deduct(amount Cents) (Cents, error) {
	if amount < 0 {
		return p.balance, fmt.Errorf("%w: cannot deduct %s", ErrInvalidAmount, amount)
	}
	if p.balance < amount {
		return p.balance, fmt.Errorf("%w: need %s, have %s", ErrInsufficientBalance, amount, p.balance)
	}

	p.balance -= amount
	return p.balance, nil
}

// Refund returns the current balance and zeroes it unconditionally.
// A refund of 0 is legitimate.
func (p *Processor) Refund() Cents {
	refunded := p.balance
	p.balance = 0
	return refunded
}

// Denominations returns the accepted coin values in ascending order.
func (p *Processor) Denominations() []Cents {
	return slices.Clone(p.denominations)
}

func formatDenominations(denoms []Cents) string {
	out := ""
	for i, d := range denoms {
		if i > 0 {
			out += ", "
		}
		out += d.String()
	}
	return out
}
