package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// GetOrderQueryHandler serves order snapshots. The snapshot is a deep copy:
// item statuses reflect the moment of the query and jobs running afterwards
// do not mutate it.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order snapshot queries.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepository: orderRepository,
	}
}

// Handle returns the table's current order snapshot, or an
// ObjectNotFoundError when the table has no order.
func (h *GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.Get(ctx, query.TableID())
}
