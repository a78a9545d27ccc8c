package payment

import (
	"fmt"
	"math"
)

// Cents represents a monetary amount in the smallest currency unit.
// For example, $1.50 is Cents(150).
type Cents int64

// Float returns the amount in major currency units (dollars).
func (c Cents) Float() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return fmt.Sprintf("$%.2f", c.Float())
}

// ParseAmount converts a decimal amount in major currency units into Cents.
// Amounts that do not land on a whole cent are rejected, never rounded.
func ParseAmount(amount float64) (Cents, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	scaled := amount * 100
	cents := math.Round(scaled)
	if math.Abs(scaled-cents) > 1e-6 {
		return 0, fmt.Errorf("%w: %v is not a whole cent amount", ErrInvalidAmount, amount)
	}

	return Cents(cents), nil
}
