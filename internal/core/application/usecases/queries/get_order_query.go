// Package queries contains read-only operations over the kitchen's state.
// Implements the Query pattern for the read side of the CQRS architecture;
// every query returns independent snapshots, never live repository state.
package queries

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery represents a request for one table's current order
// snapshot.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	tableID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a table's order.
func NewGetOrderQuery(tableID int) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if tableID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("table id",
			fmt.Errorf("%d is not greater than 0", tableID))
	}
	query.tableID = tableID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// TableID returns the table being queried.
func (q GetOrderQuery) TableID() int {
	return q.tableID
}
