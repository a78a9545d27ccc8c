package inventory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrymomot/vendkit/pkg/payment"
)

// Item is a single catalog entry. Price and Stock are the only mutable
// fields, and they are mutated only through Service operations.
type Item struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Price    payment.Cents `json:"price_cents" yaml:"-"`
	Stock    int           `json:"stock" yaml:"stock"`
	ImageURL string        `json:"image,omitempty" yaml:"image,omitempty"`
}

// Service manages the vending machine catalog. All access is guarded by a
// RWMutex so a single catalog can be shared across vending sessions.
type Service struct {
	mu    sync.RWMutex
	items map[string]*Item
}

// New creates a catalog service. Without options the default catalog is used.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		items: make(map[string]*Item),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if len(s.items) == 0 {
		for _, item := range DefaultCatalog() {
			item := item
			s.items[item.ID] = &item
		}
	}

	return s, nil
}

// MustNew creates a catalog service and panics on configuration errors.
func MustNew(opts ...Option) *Service {
	s, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create inventory service: %v", err))
	}
	return s
}

// Item returns a copy of the catalog entry for the given id.
func (s *Service) Item(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return *item, nil
}

// Items returns a copy of the whole catalog sorted by item id.
func (s *Service) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Available reports whether the item exists and has stock remaining.
func (s *Service) Available(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return ok && item.Stock > 0
}

// DecrementStock removes one unit of stock. It fails without mutation when
// the item is unknown or already at zero.
func (s *Service) DecrementStock(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if item.Stock <= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, id)
	}

	item.Stock--
	return nil
}

// DecrementAll removes one unit per listed id under a single lock, counting
// duplicates as multiple units. Any shortfall fails the whole call with no
// mutation, so stock can never go negative even when several sessions commit
// carts referencing the same last unit concurrently.
func (s *Service) DecrementAll(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	needed := make(map[string]int, len(ids))
	for _, id := range ids {
		needed[id]++
	}

	for id, n := range needed {
		item, ok := s.items[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrItemNotFound, id)
		}
		if item.Stock < n {
			return fmt.Errorf("%w: %s", ErrOutOfStock, id)
		}
	}

	for id, n := range needed {
		s.items[id].Stock -= n
	}
	return nil
}

// IncrementStock adds n units of stock to an existing item.
func (s *Service) IncrementStock(id string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative restock quantity %d", ErrInvalidItem, n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	item.Stock += n
	return nil
}

// SetPrice updates the price of an existing item.
func (s *Service) SetPrice(id string, price payment.Cents) error {
	if price < 0 {
		return fmt.Errorf("%w: negative price %s", ErrInvalidItem, price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	item.Price = price
	return nil
}
