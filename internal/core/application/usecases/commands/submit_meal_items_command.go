package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrSubmitMealItemsCommandIsNotConstructed = errors.New(
	"SubmitMealItemsCommand must be created via NewSubmitMealItemsCommand constructor",
)

// MenuItemRequest is one requested dish as the caller sends it: the catalog
// item id, the display name, and the formatted price, all as text.
type MenuItemRequest struct {
	MenuItemID string
	Name       string
	Price      string
}

// SubmitMealItemsCommand represents a request to attach a batch of meal
// items to a table's existing order. The raw request triples are parsed and
// validated at construction, so a constructed command always carries valid
// catalog references.
//
// Example:
//
//	cmd, err := NewSubmitMealItemsCommand(7, []MenuItemRequest{
//	    {MenuItemID: id, Name: "Burger", Price: "9.99"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid meal item batch: %w", err)
//	}
type SubmitMealItemsCommand struct { //nolint:recvcheck //using for validation
	tableID   int
	menuItems []menu.MenuItem

	guard guard.ConstructorGuard
}

// NewSubmitMealItemsCommand creates a command to submit meal items for a
// table. Validates the table id, requires a non-empty batch, and parses
// every requested item's id and price.
func NewSubmitMealItemsCommand(tableID int, requests []MenuItemRequest) (SubmitMealItemsCommand, error) {
	cmd := SubmitMealItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setMenuItems(requests),
	); err != nil {
		return SubmitMealItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitMealItemsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitMealItemsCommandIsNotConstructed)
}

// TableID returns the table the batch is submitted for.
func (c SubmitMealItemsCommand) TableID() int {
	return c.tableID
}

// MenuItems returns the parsed catalog references, in request order.
func (c SubmitMealItemsCommand) MenuItems() []menu.MenuItem {
	return c.menuItems
}

func (c *SubmitMealItemsCommand) setTableID(tableID int) error {
	if tableID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table id",
			fmt.Errorf("%d is not greater than 0", tableID))
	}

	c.tableID = tableID
	return nil
}

func (c *SubmitMealItemsCommand) setMenuItems(requests []MenuItemRequest) error {
	if len(requests) == 0 {
		return errs.NewValueIsRequiredError("menu items")
	}

	items := make([]menu.MenuItem, 0, len(requests))
	for _, req := range requests {
		id, err := kernel.UUIDFromString(req.MenuItemID)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("menu item id", err)
		}

		price, err := kernel.PriceFromString(req.Price)
		if err != nil {
			return err
		}

		item, err := menu.NewMenuItem(id, req.Name, price)
		if err != nil {
			return err
		}

		items = append(items, item)
	}

	c.menuItems = items
	return nil
}
