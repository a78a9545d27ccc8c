// Package payment handles coin validation and balance arithmetic for a
// vending session.
//
// Monetary amounts are represented as Cents, an int64 count of the smallest
// currency unit; $1.50 is Cents(150). ParseAmount converts decimal input from
// a transport layer into Cents, rejecting anything that does not land on a
// whole cent.
//
// # Usage
//
//	proc := payment.New()
//
//	balance, err := proc.InsertCoin(payment.Cents(100))
//	if err != nil {
//	    // coin rejected, balance unchanged
//	}
//
//	if proc.SufficientBalance(150) {
//	    balance, _ = proc.Deduct(150)
//	}
//
//	change := proc.Refund() // returns and zeroes the balance
//
// The accepted denominations default to 0.25, 0.50, 1.00 and 2.00 and can be
// replaced with WithDenominations. A coin outside the set is rejected
// outright, never rounded or coerced.
//
// # Concurrency
//
// Processor is a per-session ledger and is not safe for concurrent use on its
// own. The owning session (vending.Machine) serializes every operation inside
// its critical section.
package payment
