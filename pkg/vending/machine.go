package vending

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/vendkit/pkg/inventory"
	"github.com/dmitrymomot/vendkit/pkg/payment"
	"github.com/dmitrymomot/vendkit/pkg/statemachine"
)

// Machine is one vending session: the state machine, the balance ledger, the
// cart and the append-only transaction history, orchestrated against a
// catalog that may be shared with other machines.
//
// Every workflow is a critical section under a single mutex: no two workflows
// interleave reads and writes of the session. Any workflow failure leaves the
// session and the catalog exactly as before the call.
type Machine struct {
	id        uuid.UUID
	mu        sync.Mutex
	fsm       statemachine.StateMachine
	inventory *inventory.Service
	payment   *payment.Processor
	cart      []string
	selected  *inventory.Item
	history   []Transaction
	log       *slog.Logger
	now       func() time.Time
}

// New creates a vending machine in the Idle state with a zero balance.
// Without options it runs against the default catalog and coin set.
func New(opts ...Option) *Machine {
	m := &Machine{
		id:  uuid.New(),
		fsm: newStateMachine(),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.inventory == nil {
		m.inventory = inventory.MustNew()
	}
	if m.payment == nil {
		m.payment = payment.New()
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return m
}

// ID returns the machine's identifier.
func (m *Machine) ID() uuid.UUID {
	return m.id
}

// Inventory returns the catalog this machine vends from.
func (m *Machine) Inventory() *inventory.Service {
	return m.inventory
}

// InsertCoin adds a coin to the balance. Allowed from Idle, CoinInserted and
// ItemSelected (topping up after selecting is fine). The coin is validated
// before any state change: a rejected coin from Idle leaves the machine Idle.
func (m *Machine) InsertCoin(amount payment.Cents) (InsertCoinResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.state()
	if state != StateIdle && state != StateCoinInserted && state != StateItemSelected {
		return m.insertCoinResult(""), newInvalidTransitionError(state.Name(), ActionInsertCoin.Name())
	}

	if _, err := m.payment.InsertCoin(amount); err != nil {
		return m.insertCoinResult(""), err
	}

	message := fmt.Sprintf("%s inserted successfully", amount)
	if m.fsm.CanFire(ActionInsertCoin) {
		message, _ = m.fsm.Fire(ActionInsertCoin)
	}

	m.log.Debug("coin inserted",
		slog.String("machine_id", m.id.String()),
		slog.String("amount", amount.String()),
		slog.String("balance", m.payment.Balance().String()))

	return m.insertCoinResult(message), nil
}

// SelectItem appends the item to the cart. Stock is checked but not reserved:
// the real availability gate runs at commit time, so two selections of the
// last unit may both succeed here.
func (m *Machine) SelectItem(id string) (SelectItemResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.state()
	if state != StateCoinInserted && state != StateItemSelected {
		return m.selectItemResult(""), newInvalidTransitionError(state.Name(), ActionSelectItem.Name())
	}

	item, err := m.inventory.Item(id)
	if err != nil {
		return m.selectItemResult(""), err
	}

	if !m.inventory.Available(id) {
		return m.selectItemResult(""), fmt.Errorf("%w: %s", inventory.ErrOutOfStock, item.Name)
	}

	m.cart = append(m.cart, id)
	m.selected = &item

	if state == StateCoinInserted {
		if _, err := m.fsm.Fire(ActionSelectItem); err != nil {
			// The table defines coin_inserted/select_item, so this cannot
			// happen; undo the cart append rather than leave a torn session.
			m.cart = m.cart[:len(m.cart)-1]
			m.selected = nil
			return m.selectItemResult(""), err
		}
	}

	m.log.Debug("item selected",
		slog.String("machine_id", m.id.String()),
		slog.String("item_id", id),
		slog.Int("cart_size", len(m.cart)))

	result := m.selectItemResult(fmt.Sprintf("%s added to cart", item.Name))
	result.Item = item
	return result, nil
}

// CompletePurchase commits the whole cart atomically: prices and availability
// are re-read at commit time, the balance must cover the current total, and
// stock is decremented for every cart unit through a single all-or-nothing
// gate. On success the transaction record is appended, the cart is cleared
// and the remaining balance is paid out as change.
func (m *Machine) CompletePurchase() (PurchaseResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.state()
	if state != StateItemSelected {
		return m.purchaseResult(""), newInvalidTransitionError(state.Name(), ActionDispense.Name())
	}

	if len(m.cart) == 0 {
		return m.purchaseResult(""), ErrEmptyCart
	}

	// Re-validate everything before the first mutating step: current prices,
	// commit-time availability (counting cart multiplicity) and balance.
	var total payment.Cents
	items := make([]PurchasedItem, 0, len(m.cart))
	needed := make(map[string]int, len(m.cart))
	for _, id := range m.cart {
		item, err := m.inventory.Item(id)
		if err != nil {
			return m.purchaseResult(""), fmt.Errorf("%w: %s", ErrOutOfStockAtCommit, id)
		}
		needed[id]++
		if item.Stock < needed[id] {
			return m.purchaseResult(""), fmt.Errorf("%w: %s", ErrOutOfStockAtCommit, item.Name)
		}
		total += item.Price
		items = append(items, PurchasedItem{ID: item.ID, Name: item.Name, Price: item.Price})
	}

	if !m.payment.SufficientBalance(total) {
		return m.purchaseResult(""), fmt.Errorf("%w: need %s, have %s",
			payment.ErrInsufficientBalance, total, m.payment.Balance())
	}

	// The stock decrement is the one step that can race with other machines
	// sharing this catalog, so it runs first as an all-or-nothing gate. If
	// another session took the last unit since the check above, nothing has
	// been mutated yet and the whole purchase fails cleanly.
	if err := m.inventory.DecrementAll(m.cart); err != nil {
		return m.purchaseResult(""), fmt.Errorf("%w: %v", ErrOutOfStockAtCommit, err)
	}

	if _, err := m.fsm.Fire(ActionDispense); err != nil {
		return m.purchaseResult(""), err
	}

	change, err := m.payment.Deduct(total)
	if err != nil {
		// Unreachable: sufficiency was checked inside this critical section.
		return m.purchaseResult(""), err
	}

	tx := Transaction{
		ID:         uuid.New(),
		Timestamp:  m.now(),
		Items:      items,
		TotalPrice: total,
		Change:     change,
	}
	m.history = append(m.history, tx)

	m.cart = nil
	m.selected = nil
	m.payment.Refund() // remaining balance is paid out as change

	if _, err := m.fsm.Fire(ActionComplete); err != nil {
		return m.purchaseResult(""), err
	}

	m.log.Info("purchase completed",
		slog.String("machine_id", m.id.String()),
		slog.String("transaction_id", tx.ID.String()),
		slog.Int("items", len(tx.Items)),
		slog.String("total", tx.TotalPrice.String()),
		slog.String("change", tx.Change.String()))

	result := m.purchaseResult(fmt.Sprintf("%d item(s) dispensed successfully!", len(tx.Items)))
	result.Transaction = tx
	result.Change = change
	return result, nil
}

// CancelTransaction refunds the full balance and clears the cart. Allowed
// from CoinInserted, ItemSelected and OutOfStock; a refund of 0 is
// legitimate.
func (m *Machine) CancelTransaction() (CancelResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := m.state()
	if state != StateCoinInserted && state != StateItemSelected && state != StateOutOfStock {
		return m.cancelResult(""), newInvalidTransitionError(state.Name(), ActionRefund.Name())
	}

	if _, err := m.fsm.Fire(ActionRefund); err != nil {
		return m.cancelResult(""), err
	}

	refunded := m.payment.Refund()
	m.cart = nil
	m.selected = nil

	if _, err := m.fsm.Fire(ActionComplete); err != nil {
		return m.cancelResult(""), err
	}

	m.log.Info("transaction cancelled",
		slog.String("machine_id", m.id.String()),
		slog.String("refunded", refunded.String()))

	result := m.cancelResult(fmt.Sprintf("Refunded %s", refunded))
	result.RefundAmount = refunded
	return result, nil
}

// Status returns a point-in-time read of the session.
func (m *Machine) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	var selected *inventory.Item
	if m.selected != nil {
		item := *m.selected
		selected = &item
	}

	actions := m.fsm.AvailableEvents()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.Name()
	}

	return Status{
		State:            m.state().Name(),
		Balance:          m.payment.Balance(),
		SelectedItem:     selected,
		Cart:             slices.Clone(m.cart),
		CartCount:        len(m.cart),
		AvailableActions: names,
	}
}

// History returns the transaction history in insertion order.
func (m *Machine) History() []Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.history)
}

// Reset forces the machine back to Idle with a zero balance and an empty
// cart, bypassing the transition table. This is an administrative override,
// not part of the normal workflow; the transaction history survives.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fsm.SetState(StateIdle)
	m.payment.Refund()
	m.cart = nil
	m.selected = nil

	m.log.Info("machine reset", slog.String("machine_id", m.id.String()))
}

func (m *Machine) state() statemachine.State {
	return m.fsm.Current()
}

func (m *Machine) insertCoinResult(message string) InsertCoinResult {
	return InsertCoinResult{
		Message: message,
		Balance: m.payment.Balance(),
		State:   m.state().Name(),
		Cart:    slices.Clone(m.cart),
	}
}

func (m *Machine) selectItemResult(message string) SelectItemResult {
	return SelectItemResult{
		Message: message,
		State:   m.state().Name(),
		Cart:    slices.Clone(m.cart),
	}
}

func (m *Machine) purchaseResult(message string) PurchaseResult {
	return PurchaseResult{
		Message: message,
		State:   m.state().Name(),
	}
}

func (m *Machine) cancelResult(message string) CancelResult {
	return CancelResult{
		Message: message,
		State:   m.state().Name(),
	}
}
