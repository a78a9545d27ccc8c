package vendingapi

import (
	"time"

	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/vending"
)

// itemView renders a catalog entry with the price in major currency units,
// matching the wire format clients expect (1.50, not 150).
type itemView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Image string  `json:"image,omitempty"`
}

func toItemView(item inventory.Item) itemView {
	return itemView{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price.Float(),
		Stock: item.Stock,
		Image: item.ImageURL,
	}
}

func toItemViews(items []inventory.Item) []itemView {
	views := make([]itemView, len(items))
	for i, item := range items {
		views[i] = toItemView(item)
	}
	return views
}

type purchasedItemView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type transactionView struct {
	ID         string              `json:"id"`
	Timestamp  time.Time           `json:"timestamp"`
	Items      []purchasedItemView `json:"items"`
	TotalPrice float64             `json:"total_price"`
	Change     float64             `json:"change"`
}

func toTransactionView(tx vending.Transaction) transactionView {
	items := make([]purchasedItemView, len(tx.Items))
	for i, item := range tx.Items {
		items[i] = purchasedItemView{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price.Float(),
		}
	}
	return transactionView{
		ID:         tx.ID.String(),
		Timestamp:  tx.Timestamp,
		Items:      items,
		TotalPrice: tx.TotalPrice.Float(),
		Change:     tx.Change.Float(),
	}
}

func toTransactionViews(txs []vending.Transaction) []transactionView {
	views := make([]transactionView, len(txs))
	for i, tx := range txs {
		views[i] = toTransactionView(tx)
	}
	return views
}

type statusView struct {
	State            string    `json:"state"`
	Balance          float64   `json:"balance"`
	SelectedItem     *itemView `json:"selected_item"`
	Cart             []string  `json:"cart"`
	CartCount        int       `json:"cart_count"`
	AvailableActions []string  `json:"available_actions"`
}

func toStatusView(status vending.Status) statusView {
	var selected *itemView
	if status.SelectedItem != nil {
		view := toItemView(*status.SelectedItem)
		selected = &view
	}

	cart := status.Cart
	if cart == nil {
		cart = []string{}
	}
	actions := status.AvailableActions
	if actions == nil {
		actions = []string{}
	}

	return statusView{
		State:            status.State,
		Balance:          status.Balance.Float(),
		SelectedItem:     selected,
		Cart:             cart,
		CartCount:        status.CartCount,
		AvailableActions: actions,
	}
}
