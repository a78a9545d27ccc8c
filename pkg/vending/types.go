package vending

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/payment"
)

// PurchasedItem is a snapshot of one dispensed unit at commit time. The price
// recorded here is the price charged, even if the catalog price changes later.
type PurchasedItem struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Price payment.Cents `json:"price_cents"`
}

// Transaction records a completed purchase. Records are immutable once
// appended to the session history.
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	Items      []PurchasedItem `json:"items"`
	TotalPrice payment.Cents   `json:"total_price_cents"`
	Change     payment.Cents   `json:"change_cents"`
}

// InsertCoinResult reports the outcome of a coin insertion.
type InsertCoinResult struct {
	Message string
	Balance payment.Cents
	State   string
	Cart    []string
}

// SelectItemResult reports the outcome of adding an item to the cart.
type SelectItemResult struct {
	Message string
	State   string
	Cart    []string
	Item    inventory.Item
}

// PurchaseResult reports the outcome of a completed purchase.
type PurchaseResult struct {
	Message     string
	Transaction Transaction
	Change      payment.Cents
	State       string
}

// CancelResult reports the outcome of a cancelled transaction.
type CancelResult struct {
	Message      string
	RefundAmount payment.Cents
	State        string
}

// Status is a point-in-time read of the session.
type Status struct {
	State            string
	Balance          payment.Cents
	SelectedItem     *inventory.Item
	Cart             []string
	CartCount        int
	AvailableActions []string
}
