package order

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

var (
	// ErrMealItemIsNotConstructed is returned when a MealItem instance was
	// not created through the NewMealItem factory function.
	ErrMealItemIsNotConstructed = errors.New("MealItem must be created via NewMealItem constructor")

	// ErrMealItemRemoved is returned when a lifecycle transition is requested
	// for an item whose removed flag is set.
	ErrMealItemRemoved = errors.New("meal item is flagged removed")
)

// MealItem is a single unit of food within an order. It carries its own
// globally unique identifier, the immutable catalog item it refers to, a
// cooking duration captured at creation, a lifecycle status, and a removed
// flag that is distinct from the terminal status.
//
// A meal item is created by the fulfillment coordinator on request intake
// and mutated only through its owning Order while the repository holds the
// table lock. It is never deleted from its order: once Completed or flagged
// removed it persists as a historical record.
type MealItem struct {
	// id is generated at creation and unique across the entire system
	id kernel.UUID

	// menuItem is the catalog entry this item was ordered from
	menuItem menu.MenuItem

	// cookingMinutes is captured from the menu item at creation
	cookingMinutes int

	// status is the current lifecycle state
	status MealItemStatus

	// removed marks the item as struck from the order; in-flight cooking
	// jobs must ignore the item once this is set
	removed bool

	// isConstructed ensures the item was created via NewMealItem
	isConstructed bool
}

// NewMealItem creates a MealItem for the given catalog entry. The item
// starts Pending, not removed, with a freshly generated identifier and the
// menu item's deterministic cooking time.
func NewMealItem(menuItem menu.MenuItem) (*MealItem, error) {
	if err := menuItem.Validate(); err != nil {
		return nil, err
	}

	return &MealItem{
		id:             kernel.NewUUID(),
		menuItem:       menuItem,
		cookingMinutes: menuItem.CookingMinutes(),
		status:         MealItemPending,
		isConstructed:  true,
	}, nil
}

// Validate ensures the MealItem was properly constructed through NewMealItem.
func (m *MealItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMealItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (m *MealItem) ID() kernel.UUID {
	return m.id
}

// MenuItem returns the catalog entry this item was ordered from.
func (m *MealItem) MenuItem() menu.MenuItem {
	return m.menuItem
}

// CookingMinutes returns the simulated preparation time in minutes.
func (m *MealItem) CookingMinutes() int {
	return m.cookingMinutes
}

// Status returns the stored lifecycle status. Removal does not change it;
// use ReportedStatus for the caller-facing view.
func (m *MealItem) Status() MealItemStatus {
	return m.status
}

// IsRemoved reports whether the item has been struck from the order.
func (m *MealItem) IsRemoved() bool {
	return m.removed
}

// ReportedStatus returns the status to expose in snapshots: Removed when
// the removed flag is set, the lifecycle status otherwise.
func (m *MealItem) ReportedStatus() MealItemStatus {
	if m.removed {
		return MealItemRemoved
	}
	return m.status
}

// StartPreparing moves the item from Pending to Preparing.
// Items flagged removed are rejected with ErrMealItemRemoved.
func (m *MealItem) StartPreparing() error {
	if m.removed {
		return ErrMealItemRemoved
	}

	newStatus, err := m.status.StartPreparing()
	if err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

// Complete moves the item from Preparing to Completed.
//
// Unlike StartPreparing, removal is not re-checked here: a cooking job
// that passed its removed check before going to sleep is allowed to finish
// and record the item as Completed.
func (m *MealItem) Complete() error {
	newStatus, err := m.status.Complete()
	if err != nil {
		return err
	}

	m.status = newStatus
	return nil
}

// MarkRemoved sets the removed flag. The lifecycle status is left in
// whatever state it had at flagging time. Flagging twice is harmless.
func (m *MealItem) MarkRemoved() {
	m.removed = true
}

// clone returns an independent copy of the meal item.
func (m *MealItem) clone() *MealItem {
	copied := *m
	return &copied
}
