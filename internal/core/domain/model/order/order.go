package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate for one table: the table id that keys the
// repository, an ordered sequence of meal items, and the aggregate status.
//
// Order follows these invariants:
//   - Must have a positive table id
//   - The meal item sequence is append-only; items are flagged removed,
//     never taken out of the sequence
//   - The aggregate status advances from Received to Preparing the first
//     time any contained meal item begins preparing, and never regresses
//   - Every meal item belongs to exactly one order for its lifetime
//   - Can only be created through the NewOrder constructor
//
// Order is not internally synchronized. The repository owns the canonical
// instances and serializes access through its per-table locks; everything
// outside the repository sees only deep copies produced by Clone.
type Order struct {
	// tableID identifies the table this order belongs to
	tableID int

	// mealItems holds the items in insertion order
	mealItems []*MealItem

	// status is the aggregate lifecycle state
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new empty Order for a table. The order starts in
// Received status with no meal items.
//
// Parameters:
//   - tableID: the table identifier (must be positive)
//
// Returns the created order, or a validation error if the table id is
// invalid.
func NewOrder(tableID int) (*Order, error) {
	if tableID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("table id",
			fmt.Errorf("%d is not greater than 0", tableID))
	}

	return &Order{
		tableID:       tableID,
		status:        StatusReceived,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// TableID returns the table this order belongs to.
func (o *Order) TableID() int {
	return o.tableID
}

// Status returns the aggregate status of the order.
func (o *Order) Status() Status {
	return o.status
}

// MealItems returns the meal items in insertion order.
// The returned slice shares the canonical items; callers outside a
// repository lock span must work with Clone instead.
func (o *Order) MealItems() []*MealItem {
	return o.mealItems
}

// MealItem looks up one meal item by id.
// Returns an ObjectNotFoundError if no item with that id exists.
func (o *Order) MealItem(id kernel.UUID) (*MealItem, error) {
	for _, item := range o.mealItems {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("mealItemId", id.String())
}

// AddMealItems appends items to the order, preserving insertion order.
// Existing items and their statuses are untouched.
func (o *Order) AddMealItems(items ...*MealItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.mealItems = append(o.mealItems, items...)
	return nil
}

// StartPreparingMealItem begins preparation of one meal item: if this is
// the first item to start preparing while the order is still Received, the
// aggregate status advances to Preparing, then the item itself moves from
// Pending to Preparing.
//
// Both steps happen in one call so that the repository can apply them under
// a single table lock acquisition; no caller can observe the aggregate
// advanced without the item transition (or the reverse).
//
// Returns an ObjectNotFoundError if the item does not exist and
// ErrMealItemRemoved if it has been struck from the order.
func (o *Order) StartPreparingMealItem(id kernel.UUID) error {
	item, err := o.MealItem(id)
	if err != nil {
		return err
	}
	if item.IsRemoved() {
		return ErrMealItemRemoved
	}

	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	if err := item.StartPreparing(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CompleteMealItem finishes preparation of one meal item, moving it from
// Preparing to Completed. Removal is deliberately not re-checked: a cooking
// job that already passed its removed check runs to completion.
func (o *Order) CompleteMealItem(id kernel.UUID) error {
	item, err := o.MealItem(id)
	if err != nil {
		return err
	}

	return item.Complete()
}

// RemoveMealItem flags one meal item as removed. The item stays in the
// order's sequence as a historical record; its lifecycle status is frozen
// at whatever it was at flagging time.
func (o *Order) RemoveMealItem(id kernel.UUID) error {
	item, err := o.MealItem(id)
	if err != nil {
		return err
	}

	item.MarkRemoved()
	return nil
}

// Clone returns a deep, independent copy of the order. Mutating the copy
// or its meal items never affects the canonical repository-owned state.
func (o *Order) Clone() *Order {
	items := make([]*MealItem, len(o.mealItems))
	for i, item := range o.mealItems {
		items[i] = item.clone()
	}

	return &Order{
		tableID:       o.tableID,
		mealItems:     items,
		status:        o.status,
		isConstructed: o.isConstructed,
	}
}
