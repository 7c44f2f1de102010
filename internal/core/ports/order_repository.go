// Package ports defines the contracts between the application core and its
// adapters: the order repository that owns canonical state and the worker
// pool that executes cooking jobs.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderRepository is the single component authorized to hold canonical
// Order and MealItem state. Every operation is linearizable per table:
// callers never observe a half-applied update, and concurrent writers to
// the same table cannot corrupt each other. Operations on different tables
// proceed independently.
//
// All other components hold only identifiers (table id, meal item id); the
// repository hands out deep copies, never live references to canonical
// state.
type OrderRepository interface {
	// Add registers a brand-new order for its table id.
	// A table that already has an order is rejected with
	// ErrOrderAlreadyExists; the existing order is untouched.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns a deep, independent copy of the table's current order
	// state, or an ObjectNotFoundError if the table has no order. The
	// internal table lock is held only for the duration of the copy.
	Get(ctx context.Context, tableID int) (*order.Order, error)

	// AddMealItems appends items to the table's order if it exists and
	// reports whether it did. When the order does not exist nothing is
	// appended; the items are discarded, not queued.
	AddMealItems(ctx context.Context, tableID int, items []*order.MealItem) (bool, error)

	// Update runs fn against the canonical order under the table's lock,
	// so any read-then-write sequence inside fn (a removed check followed
	// by a status transition, an aggregate advance tied to an item write)
	// executes as one atomic step. Returns an ObjectNotFoundError if the
	// table has no order; fn's error is passed through. fn must not retain
	// the order or its items beyond the call.
	Update(ctx context.Context, tableID int, fn func(*order.Order) error) error

	// TableIDs returns the ids of all tables with a registered order.
	TableIDs(ctx context.Context) []int
}
