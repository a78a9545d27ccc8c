package payment

import "slices"

// Option configures a Processor during construction.
type Option func(*Processor)

// WithDenominations replaces the accepted coin set. Non-positive and
// duplicate values are ignored; an empty result falls back to the defaults.
func WithDenominations(denominations ...Cents) Option {
	return func(p *Processor) {
		filtered := make([]Cents, 0, len(denominations))
		for _, d := range denominations {
			if d > 0 && !slices.Contains(filtered, d) {
				filtered = append(filtered, d)
			}
		}
		p.denominations = filtered
	}
}
