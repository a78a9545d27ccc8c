package vending

import (
	"sync"
)

// Hub maps external session keys to vending machines. A deployment wanting
// per-user isolation runs one machine per key against a shared catalog; the
// hub itself holds no cross-machine state beyond the mapping.
type Hub struct {
	mu       sync.RWMutex
	machines map[string]*Machine
	opts     []Option
}

// NewHub creates an empty hub. The given options are applied to every machine
// the hub creates; pass WithInventory with a shared catalog to make all
// machines vend from the same stock.
func NewHub(opts ...Option) *Hub {
	return &Hub{
		machines: make(map[string]*Machine),
		opts:     opts,
	}
}

// GetOrCreate returns the machine for the key, creating it on first use.
func (h *Hub) GetOrCreate(key string) *Machine {
	h.mu.RLock()
	m, ok := h.machines[key]
	h.mu.RUnlock()
	if ok {
		return m
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if m, ok := h.machines[key]; ok {
		return m
	}

	m = New(h.opts...)
	h.machines[key] = m
	return m
}

// Get returns the machine for the key, if one exists.
func (h *Hub) Get(key string) (*Machine, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.machines[key]
	return m, ok
}

// Delete removes the machine for the key.
func (h *Hub) Delete(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.machines, key)
}

// Len returns the number of machines in the hub.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.machines)
}
