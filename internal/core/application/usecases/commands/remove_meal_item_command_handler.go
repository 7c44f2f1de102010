package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// RemoveMealItemCommandHandler flags one meal item as removed under the
// table's lock.
//
// Known limitation, inherited from the occupancy model: a cooking job that
// already passed its removed check keeps the worker and still records the
// item as Completed; the flag only stops jobs that have not looked the
// item up yet.
type RemoveMealItemCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewRemoveMealItemCommandHandler creates a handler for meal item removal.
func NewRemoveMealItemCommandHandler(orderRepository ports.OrderRepository) RemoveMealItemCommandHandler {
	return RemoveMealItemCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the removal command.
// Returns an ObjectNotFoundError when the table has no order or the order
// has no such item.
func (h *RemoveMealItemCommandHandler) Handle(ctx context.Context, cmd RemoveMealItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepository.Update(ctx, cmd.TableID(), func(o *order.Order) error {
		return o.RemoveMealItem(cmd.MealItemID())
	})
}
