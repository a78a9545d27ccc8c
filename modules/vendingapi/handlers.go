package vendingapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/logger"
	"github.com/dmitrymomot/vendkit/pkg/payment"
	"github.com/dmitrymomot/vendkit/pkg/vending"
)

// envelope is the standard JSON response shape. Endpoint-specific fields are
// pointers so they are omitted from responses that do not set them.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`

	State        string           `json:"state,omitempty"`
	Balance      *float64         `json:"balance,omitempty"`
	Cart         []string         `json:"cart,omitempty"`
	Item         *itemView        `json:"item,omitempty"`
	Transaction  *transactionView `json:"transaction,omitempty"`
	Change       *float64         `json:"change,omitempty"`
	RefundAmount *float64         `json:"refund_amount,omitempty"`
	Count        *int             `json:"count,omitempty"`
}

func (s *Service) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := s.machine.Status()
	s.respond(w, http.StatusOK, envelope{
		Success: true,
		Data:    toStatusView(status),
	})
}

func (s *Service) handleListItems(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, envelope{
		Success: true,
		Data:    toItemViews(s.machine.Inventory().Items()),
	})
}

func (s *Service) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.machine.Inventory().Item(chi.URLParam(r, "itemID"))
	if err != nil {
		s.respond(w, http.StatusNotFound, envelope{
			Success: false,
			Message: "Item not found",
		})
		return
	}

	s.respond(w, http.StatusOK, envelope{
		Success: true,
		Data:    toItemView(item),
	})
}

func (s *Service) handleHistory(w http.ResponseWriter, r *http.Request) {
	history := toTransactionViews(s.machine.History())
	count := len(history)
	s.respond(w, http.StatusOK, envelope{
		Success: true,
		Data:    history,
		Count:   &count,
	})
}

func (s *Service) handleInsertCoin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount *float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Amount == nil {
		s.respond(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Amount is required",
		})
		return
	}

	amount, err := payment.ParseAmount(*req.Amount)
	if err != nil {
		s.respond(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid amount format",
		})
		return
	}

	result, err := s.machine.InsertCoin(amount)
	if err != nil {
		s.respondError(w, err, result.State)
		return
	}

	balance := result.Balance.Float()
	s.respond(w, http.StatusOK, envelope{
		Success: true,
		Message: result.Message,
		State:   result.State,
		Balance: &balance,
		Cart:    emptyIfNil(result.Cart),
	})
}

func (s *Service) handleSelectItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}
	if req.ItemID == "" {
		s.respond(w, http.StatusBadRequest, envelope{
			Success: false,
			Message: "item_id is required",
		})
		return
	}

	result, err := s.machine.SelectItem(req.ItemID)
	if err != nil {
		s.respondError(w, err, result.State)
		return
	}

	item := toItemView(result.Item)
	s.respond(w, http.StatusOK, envelope{
		Success: true,
		Message: result.Message,
		State:   result.State,
		Cart:    emptyIfNil(result.Cart),
		Item:    &item,
	})
}

func (s *Service) handlePurchase(w http.ResponseWriter, r *http.Request) {
	result, err := s.machine.CompletePurchase()
	if err != nil {
		s.respondError(w, err, result.State)
		return
	}

	tx := toTransactionView(result.Transaction)
	change := result.Change.Float()
	s.respond(w, http.StatusOK, envelope{
		Success:     true,
		Message:     result.Message,
		State:       result.State,
		Transaction: &tx,
		Change:      &change,
	})
}

func (s *Service) handleRefund(w http.ResponseWriter, r *http.Request) {
	result, err := s.machine.CancelTransaction()
	if err != nil {
		s.respondError(w, err, result.State)
		return
	}

	refunded := result.RefundAmount.Float()
	s.respond(w, http.StatusOK, envelope{
		Success:      true,
		Message:      result.Message,
		State:        result.State,
		RefundAmount: &refunded,
	})
}

func (s *Service) handleReset(w http.ResponseWriter, r *http.Request) {
	s.machine.Reset()
	s.respond(w, http.StatusOK, envelope{
		Success: true,
		Message: "Vending machine reset to IDLE state",
		State:   s.machine.Status().State,
	})
}

func (s *Service) respond(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", logger.Error(err))
	}
}

// respondError maps workflow failures to HTTP responses. Unknown items are
// 404; everything else the workflows reject is a client-side 400. The state
// reported is the (unchanged) machine state at the time of the failure.
func (s *Service) respondError(w http.ResponseWriter, err error, state string) {
	status := http.StatusBadRequest
	if errors.Is(err, inventory.ErrItemNotFound) {
		status = http.StatusNotFound
	}

	s.log.Debug("request rejected", logger.Error(err))

	s.respond(w, status, envelope{
		Success: false,
		Message: errorMessage(err),
		State:   state,
	})
}

// errorMessage keeps wire messages stable for known failures and falls back
// to the error text for the rest.
func errorMessage(err error) string {
	switch {
	case vending.IsInvalidTransitionError(err):
		return err.Error()
	case errors.Is(err, inventory.ErrItemNotFound):
		return "Item not found"
	case errors.Is(err, vending.ErrOutOfStockAtCommit):
		return "Item went out of stock before dispensing"
	case errors.Is(err, inventory.ErrOutOfStock):
		return "Item is out of stock"
	case errors.Is(err, payment.ErrInsufficientBalance):
		return "Insufficient balance"
	case errors.Is(err, payment.ErrInvalidCoin):
		return "Invalid coin denomination"
	case errors.Is(err, vending.ErrEmptyCart):
		return "Cart is empty"
	default:
		return err.Error()
	}
}

func emptyIfNil(cart []string) []string {
	if cart == nil {
		return []string{}
	}
	return cart
}
