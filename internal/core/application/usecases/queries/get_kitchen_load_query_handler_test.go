package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKitchenLoadQueryHandler_Handle(t *testing.T) {
	t.Run("should return empty load for empty kitchen", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		handler := queries.NewGetKitchenLoadQueryHandler(repo)

		load, err := handler.Handle(context.Background(), queries.NewGetKitchenLoadQuery())

		require.NoError(t, err)
		assert.Zero(t, load.Tables)
		assert.Empty(t, load.OrdersByStatus)
		assert.Empty(t, load.ItemsByStatus)
	})

	t.Run("should count orders and items by status", func(t *testing.T) {
		ctx := context.Background()
		repo := orderrepo.NewRepository()

		// Table 1: Received order with one pending and one removed item.
		first, err := order.NewOrder(1)
		require.NoError(t, err)
		pending := newPendingMealItem(t, "Soda")
		removed := newPendingMealItem(t, "Fries")
		require.NoError(t, first.AddMealItems(pending, removed))
		require.NoError(t, first.RemoveMealItem(removed.ID()))
		require.NoError(t, repo.Add(ctx, first))

		// Table 2: Preparing order with one completed item.
		second, err := order.NewOrder(2)
		require.NoError(t, err)
		cooked := newPendingMealItem(t, "Burger")
		require.NoError(t, second.AddMealItems(cooked))
		require.NoError(t, second.StartPreparingMealItem(cooked.ID()))
		require.NoError(t, second.CompleteMealItem(cooked.ID()))
		require.NoError(t, repo.Add(ctx, second))

		handler := queries.NewGetKitchenLoadQueryHandler(repo)

		load, err := handler.Handle(ctx, queries.NewGetKitchenLoadQuery())

		require.NoError(t, err)
		assert.Equal(t, 2, load.Tables)
		assert.Equal(t, map[order.Status]int{
			order.StatusReceived:  1,
			order.StatusPreparing: 1,
		}, load.OrdersByStatus)
		assert.Equal(t, map[order.MealItemStatus]int{
			order.MealItemPending:   1,
			order.MealItemRemoved:   1,
			order.MealItemCompleted: 1,
		}, load.ItemsByStatus)
	})

	t.Run("should return validation error for invalid query", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		handler := queries.NewGetKitchenLoadQueryHandler(repo)

		_, err := handler.Handle(context.Background(), queries.GetKitchenLoadQuery{})

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetKitchenLoadQueryIsNotConstructed, err)
	})
}
