// Package vendingapi exposes a vending machine session as a mountable JSON
// API.
//
// The module is a thin transport layer: every request is delegated to the
// machine's workflows, which own the transition rules, the critical section
// and the no-partial-mutation guarantee. Responses use a flat envelope with a
// success flag, a human-readable message and the resulting machine state.
//
// # Endpoints
//
//	GET  /status          machine state, balance, cart, available actions
//	GET  /items           full catalog
//	GET  /items/{itemID}  single catalog entry
//	GET  /history         completed transactions, insertion order
//	POST /insert-coin     {"amount": 1.00}
//	POST /select-item     {"item_id": "A1"}
//	POST /purchase        commit the whole cart
//	POST /refund          cancel and refund the balance
//	POST /reset           administrative reset to idle
//
// # Usage
//
//	svc := vendingapi.New(machine, vendingapi.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Mount("/api", svc.Handle())
package vendingapi
