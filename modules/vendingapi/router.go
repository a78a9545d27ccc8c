package vendingapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handle returns the vending machine API router.
//
// Example:
//
//	svc := vendingapi.New(machine, vendingapi.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Mount("/api", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/status", s.handleStatus)
	r.Get("/items", s.handleListItems)
	r.Get("/items/{itemID}", s.handleGetItem)
	r.Get("/history", s.handleHistory)

	r.Post("/insert-coin", s.handleInsertCoin)
	r.Post("/select-item", s.handleSelectItem)
	r.Post("/purchase", s.handlePurchase)
	r.Post("/refund", s.handleRefund)
	r.Post("/reset", s.handleReset)

	return r
}
