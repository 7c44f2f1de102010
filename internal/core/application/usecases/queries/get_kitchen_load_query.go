package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

var ErrGetKitchenLoadQueryIsNotConstructed = errors.New(
	"GetKitchenLoadQuery must be created via NewGetKitchenLoadQuery constructor",
)

// GetKitchenLoadQuery represents a request for an aggregate view of the
// whole kitchen: how many orders and meal items sit in each status. Used by
// the periodic kitchen report job.
type GetKitchenLoadQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenLoadQuery creates a kitchen load query.
func NewGetKitchenLoadQuery() GetKitchenLoadQuery {
	return GetKitchenLoadQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenLoadQueryIsNotConstructed)
}
