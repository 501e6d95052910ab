package order

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders. There is no delete:
// orders are never removed, only read and updated. Create exists for the
// seeding endpoint and tests — real orders arrive via the external checkout.
type Repository interface {
	// List returns all orders, newest first by creation time.
	List() ([]Order, error)
	GetByID(id string) (Order, error)
	// Update persists the order's status and tracking URL and returns the
	// stored record. It must return ErrNotFound when no row matches the id
	// rather than fabricating a record.
	Update(ord Order) (Order, error)
	Create(ord Order) (Order, error)
}

// InMemoryRepository is a mutex-guarded map implementation used by tests and
// local development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{storage: make(map[string]Order, len(seed))}
	for _, ord := range seed {
		r.storage[ord.ID] = ord
	}
	return r
}

func (r *InMemoryRepository) List() ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0, len(r.storage))
	for _, ord := range r.storage {
		out = append(out, ord)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ord, ok := r.storage[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *InMemoryRepository) Update(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.storage[ord.ID]
	if !ok {
		return Order{}, ErrNotFound
	}
	stored.Status = ord.Status
	stored.TrackingURL = ord.TrackingURL
	r.storage[ord.ID] = stored
	return stored, nil
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[ord.ID] = ord
	return ord, nil
}
