package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveMealItemCommandIsNotConstructed = errors.New(
	"RemoveMealItemCommand must be created via NewRemoveMealItemCommand constructor",
)

// RemoveMealItemCommand represents a request to strike one meal item from
// a table's order. The item stays in the order as a historical record; a
// cooking job that has not started yet will observe the flag and skip it.
type RemoveMealItemCommand struct { //nolint:recvcheck //using for validation
	tableID    int
	mealItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMealItemCommand creates a command to remove a meal item.
func NewRemoveMealItemCommand(tableID int, mealItemID kernel.UUID) (RemoveMealItemCommand, error) {
	cmd := RemoveMealItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setMealItemID(mealItemID),
	); err != nil {
		return RemoveMealItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMealItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMealItemCommandIsNotConstructed)
}

// TableID returns the table whose order contains the item.
func (c RemoveMealItemCommand) TableID() int {
	return c.tableID
}

// MealItemID returns the item to strike.
func (c RemoveMealItemCommand) MealItemID() kernel.UUID {
	return c.mealItemID
}

func (c *RemoveMealItemCommand) setTableID(tableID int) error {
	if tableID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table id",
			fmt.Errorf("%d is not greater than 0", tableID))
	}

	c.tableID = tableID
	return nil
}

func (c *RemoveMealItemCommand) setMealItemID(mealItemID kernel.UUID) error {
	if err := mealItemID.Validate(); err != nil {
		return err
	}

	c.mealItemID = mealItemID
	return nil
}
