// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor
// validation, then a handler that orchestrates repository mutations and,
// where cooking is involved, worker pool submissions.
package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrOpenOrderCommandIsNotConstructed = errors.New(
	"OpenOrderCommand must be created via NewOpenOrderCommand constructor",
)

// OpenOrderCommand represents a request to open a table's order so that
// meal items can subsequently be attached to it.
type OpenOrderCommand struct { //nolint:recvcheck //using for validation
	tableID int

	guard guard.ConstructorGuard
}

// NewOpenOrderCommand creates a command to open an order for a table.
// The table id must be positive.
func NewOpenOrderCommand(tableID int) (OpenOrderCommand, error) {
	cmd := OpenOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTableID(tableID); err != nil {
		return OpenOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenOrderCommandIsNotConstructed)
}

// TableID returns the table the order is opened for.
func (c OpenOrderCommand) TableID() int {
	return c.tableID
}

func (c *OpenOrderCommand) setTableID(tableID int) error {
	if tableID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table id",
			fmt.Errorf("%d is not greater than 0", tableID))
	}

	c.tableID = tableID
	return nil
}
