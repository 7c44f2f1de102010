// Package orderrepo provides the in-memory implementation of the order
// repository. It is the single owner of canonical Order and MealItem state;
// process restarts start from an empty kitchen.
package orderrepo

import (
	"context"
	"errors"
	"sync"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned when an order is registered for a table
// that already has one. Re-registration is rejected rather than overwritten
// so that live meal items and their in-flight cooking jobs stay observable.
var ErrOrderAlreadyExists = errors.New("table already has an active order")

// tableEntry pairs one table's canonical order with the lock that
// serializes every read or write touching it.
type tableEntry struct {
	mu    sync.Mutex
	order *order.Order
}

// Repository is a concurrent table-id to order map with one lock per table,
// so operations on different tables never contend. The outer map lock is
// held only for entry lookup and insertion, never across an order mutation.
//
// Locks are held for the brief span of a lookup plus field mutation; no
// lock is ever held across a cooking job's sleep.
type Repository struct {
	mu      sync.RWMutex
	entries map[int]*tableEntry
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		entries: make(map[int]*tableEntry),
	}
}

// Add registers a brand-new order for its table. A table id that is already
// present is rejected with ErrOrderAlreadyExists and the existing order is
// left untouched.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[aggregate.TableID()]; ok {
		return ErrOrderAlreadyExists
	}

	r.entries[aggregate.TableID()] = &tableEntry{order: aggregate}
	return nil
}

// Get returns a deep, independent copy of the table's current order state.
// The caller cannot mutate repository-owned data through the returned value.
func (r *Repository) Get(_ context.Context, tableID int) (*order.Order, error) {
	entry, ok := r.entry(tableID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("tableId", tableID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.order.Clone(), nil
}

// AddMealItems appends items to the table's order if it exists and reports
// whether it did. When the order does not exist there is no side effect:
// the items are discarded, not queued for later.
func (r *Repository) AddMealItems(_ context.Context, tableID int, items []*order.MealItem) (bool, error) {
	entry, ok := r.entry(tableID)
	if !ok {
		return false, nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := entry.order.AddMealItems(items...); err != nil {
		return true, err
	}
	return true, nil
}

// Update runs fn against the canonical order under the table's lock. The
// whole of fn executes as one unbroken lock span, so a removed check, an
// item transition, and the aggregate advance it triggers can never
// interleave with a concurrent update for the same table.
func (r *Repository) Update(_ context.Context, tableID int, fn func(*order.Order) error) error {
	entry, ok := r.entry(tableID)
	if !ok {
		return errs.NewObjectNotFoundError("tableId", tableID)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.order)
}

// TableIDs returns the ids of all tables with a registered order.
func (r *Repository) TableIDs(_ context.Context) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

func (r *Repository) entry(tableID int) (*tableEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[tableID]
	return entry, ok
}
