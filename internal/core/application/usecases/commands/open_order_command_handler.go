package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// OpenOrderCommandHandler handles the business logic for opening a table's
// order. The order starts empty in Received status; a table with a live
// order cannot be opened again until that order is retired externally.
type OpenOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewOpenOrderCommandHandler creates a handler for order opening operations.
func NewOpenOrderCommandHandler(orderRepository ports.OrderRepository) OpenOrderCommandHandler {
	return OpenOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the open order command.
// Returns the repository's conflict error when the table already has an
// active order.
func (h *OpenOrderCommandHandler) Handle(ctx context.Context, cmd OpenOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.TableID())
	if err != nil {
		return err
	}

	return h.orderRepository.Add(ctx, aggregate)
}
