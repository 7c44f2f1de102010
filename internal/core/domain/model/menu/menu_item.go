// Package menu provides the immutable catalog reference used by meal items.
// A MenuItem is a value object created once per request from caller input;
// it is never mutated and is owned by the meal item that references it.
package menu

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem factory function.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// Cooking minutes are derived deterministically from the catalog item id,
// always falling inside [minCookingMinutes, maxCookingMinutes].
const (
	minCookingMinutes = 1
	maxCookingMinutes = 3
)

// MenuItem represents an immutable catalog reference: the id of the catalog
// entry, its display name, and its price as a fixed-point currency value.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty name
//   - Can only be created through the NewMenuItem constructor
//
// The struct uses private fields to ensure immutability; it is safe to copy
// and to share across goroutines.
type MenuItem struct {
	// id is the opaque catalog identifier
	id kernel.UUID

	// name is the display name shown on the order
	name string

	// price is the fixed-point currency value of the item
	price kernel.Price

	// isConstructed ensures the item was created via NewMenuItem
	isConstructed bool
}

// NewMenuItem creates a MenuItem with validation. This is the only way to
// create a valid MenuItem.
//
// Parameters:
//   - id: catalog identifier (must be a valid UUID)
//   - name: display name (must not be empty)
//   - price: fixed-point price
//
// Returns the created item, or a validation error if any parameter is invalid.
func NewMenuItem(id kernel.UUID, name string, price kernel.Price) (MenuItem, error) {
	if err := id.Validate(); err != nil {
		return MenuItem{}, err
	}
	if name == "" {
		return MenuItem{}, errs.NewValueIsRequiredError("menu item name")
	}

	return MenuItem{
		id:            id,
		name:          name,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuItem was properly constructed through NewMenuItem.
func (m MenuItem) Validate() error {
	if !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier.
func (m MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m MenuItem) Name() string {
	return m.name
}

// Price returns the fixed-point price.
func (m MenuItem) Price() kernel.Price {
	return m.price
}

// CookingMinutes returns the simulated preparation time for this catalog
// item in minutes. The value is derived deterministically from the item id,
// so the same dish always takes the same time to cook.
func (m MenuItem) CookingMinutes() int {
	var h uint32 = 2166136261
	for _, b := range []byte(m.id.String()) {
		h ^= uint32(b)
		h *= 16777619
	}
	return minCookingMinutes + int(h%uint32(maxCookingMinutes-minCookingMinutes+1))
}
