package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingMealItem(t *testing.T, name string) *order.MealItem {
	t.Helper()

	price, err := kernel.NewPrice(450)
	require.NoError(t, err)
	menuItem, err := menu.NewMenuItem(kernel.NewUUID(), name, price)
	require.NoError(t, err)
	item, err := order.NewMealItem(menuItem)
	require.NoError(t, err)

	return item
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should return independent snapshot", func(t *testing.T) {
		ctx := context.Background()
		repo := orderrepo.NewRepository()

		aggregate, err := order.NewOrder(7)
		require.NoError(t, err)
		item := newPendingMealItem(t, "Burger")
		require.NoError(t, aggregate.AddMealItems(item))
		require.NoError(t, repo.Add(ctx, aggregate))

		handler := queries.NewGetOrderQueryHandler(repo)
		query, err := queries.NewGetOrderQuery(7)
		require.NoError(t, err)

		snapshot, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 7, snapshot.TableID())
		assert.Equal(t, order.StatusReceived, snapshot.Status())
		require.Len(t, snapshot.MealItems(), 1)
		assert.Equal(t, order.MealItemPending, snapshot.MealItems()[0].Status())

		// Mutating the stored order must not bleed into the snapshot.
		require.NoError(t, repo.Update(ctx, 7, func(o *order.Order) error {
			return o.StartPreparingMealItem(item.ID())
		}))
		assert.Equal(t, order.MealItemPending, snapshot.MealItems()[0].Status())
	})

	t.Run("should report not found for absent order", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		handler := queries.NewGetOrderQueryHandler(repo)

		query, err := queries.NewGetOrderQuery(99)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return validation error for invalid query", func(t *testing.T) {
		repo := orderrepo.NewRepository()
		handler := queries.NewGetOrderQueryHandler(repo)

		_, err := handler.Handle(context.Background(), queries.GetOrderQuery{})

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetOrderQueryIsNotConstructed, err)
	})
}
