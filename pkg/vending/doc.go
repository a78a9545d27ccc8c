// Package vending orchestrates a vending machine's transactional lifecycle:
// accepting coins, selecting items into a cart, committing a multi-item
// purchase against inventory and balance, and refunding on cancellation.
//
// State transitions follow a Mealy-machine discipline built on
// pkg/statemachine: the message produced by a transition depends on the state
// being left and the action taken. The legal states are idle, coin_inserted,
// item_selected, dispensing, out_of_stock and refund, with idle both the
// initial state and the state reached after every completed cycle.
//
// # Usage
//
//	machine := vending.New(vending.WithLogger(log))
//
//	_, _ = machine.InsertCoin(payment.Cents(200))
//	_, _ = machine.SelectItem("A1")
//	result, err := machine.CompletePurchase()
//	// result.Transaction holds the item snapshots, total and change
//
// # Workflows
//
// Selection checks availability but does not reserve stock; the real gate
// runs at commit time, when prices and stock are re-read and the whole cart
// is decremented through inventory.DecrementAll as a single all-or-nothing
// step. A purchase either dispenses everything or mutates nothing.
//
// CancelTransaction refunds the full balance and clears the cart. Reset is an
// administrative override that forces the machine back to Idle, bypassing the
// transition table; the transaction history survives it.
//
// # Concurrency
//
// One Machine is one session. Every workflow runs as a critical section under
// a single mutex covering state, balance, cart, selection and history. The
// catalog may be shared across machines; when two sessions commit carts
// racing for the last unit of stock, the inventory gate lets exactly one win
// and the loser fails with ErrOutOfStockAtCommit, stock never going negative.
//
// Multi-tenant fan-out lives outside the Machine: Hub maps session keys to
// independent machines, typically over a shared catalog.
package vending
