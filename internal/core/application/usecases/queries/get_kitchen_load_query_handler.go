package queries

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// KitchenLoad is the aggregate view of the kitchen at one instant.
// Item counts use reported statuses, so removed items show up under
// Removed rather than their frozen lifecycle status.
type KitchenLoad struct {
	Tables         int
	OrdersByStatus map[order.Status]int
	ItemsByStatus  map[order.MealItemStatus]int
}

// GetKitchenLoadQueryHandler counts orders and meal items by status across
// all tables. Each table is snapshotted independently, so the view is
// per-table consistent but not a global atomic cut; good enough for
// monitoring.
type GetKitchenLoadQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetKitchenLoadQueryHandler creates a handler for kitchen load queries.
func NewGetKitchenLoadQueryHandler(orderRepository ports.OrderRepository) GetKitchenLoadQueryHandler {
	return GetKitchenLoadQueryHandler{
		orderRepository: orderRepository,
	}
}

// Handle builds the kitchen load view from per-table snapshots.
func (h *GetKitchenLoadQueryHandler) Handle(ctx context.Context, query GetKitchenLoadQuery) (KitchenLoad, error) {
	if err := query.Validate(); err != nil {
		return KitchenLoad{}, err
	}

	load := KitchenLoad{
		OrdersByStatus: make(map[order.Status]int),
		ItemsByStatus:  make(map[order.MealItemStatus]int),
	}

	for _, tableID := range h.orderRepository.TableIDs(ctx) {
		snapshot, err := h.orderRepository.Get(ctx, tableID)
		if err != nil {
			// A table retired between listing and snapshotting is skipped.
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return KitchenLoad{}, err
		}

		load.Tables++
		load.OrdersByStatus[snapshot.Status()]++
		for _, item := range snapshot.MealItems() {
			load.ItemsByStatus[item.ReportedStatus()]++
		}
	}

	return load, nil
}
