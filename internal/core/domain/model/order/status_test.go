package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusReceived, order.StatusPreparing, order.StatusCompleted} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should fail for unknown status", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
	})

	t.Run("should fail for out-of-range status", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should name every status", func(t *testing.T) {
		assert.Equal(t, "Received", order.StatusReceived.String())
		assert.Equal(t, "Preparing", order.StatusPreparing.String())
		assert.Equal(t, "Completed", order.StatusCompleted.String())
		assert.Equal(t, "Unknown", order.StatusUnknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_StartPreparing(t *testing.T) {
	t.Run("should advance from Received", func(t *testing.T) {
		next, err := order.StatusReceived.StartPreparing()

		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, next)
	})

	t.Run("should stay at Preparing for further items", func(t *testing.T) {
		next, err := order.StatusPreparing.StartPreparing()

		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, next)
	})

	t.Run("should fail from Completed", func(t *testing.T) {
		_, err := order.StatusCompleted.StartPreparing()

		require.Error(t, err)
	})

	t.Run("should fail from Unknown", func(t *testing.T) {
		_, err := order.StatusUnknown.StartPreparing()

		require.Error(t, err)
	})
}

func TestMealItemStatus_Transitions(t *testing.T) {
	t.Run("should follow Pending to Preparing to Completed", func(t *testing.T) {
		preparing, err := order.MealItemPending.StartPreparing()
		require.NoError(t, err)
		assert.Equal(t, order.MealItemPreparing, preparing)

		completed, err := preparing.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.MealItemCompleted, completed)
	})

	t.Run("should not start preparing twice", func(t *testing.T) {
		_, err := order.MealItemPreparing.StartPreparing()

		require.Error(t, err)
	})

	t.Run("should not complete a pending item", func(t *testing.T) {
		_, err := order.MealItemPending.Complete()

		require.Error(t, err)
	})

	t.Run("should not leave Completed", func(t *testing.T) {
		_, err := order.MealItemCompleted.StartPreparing()
		require.Error(t, err)

		_, err = order.MealItemCompleted.Complete()
		require.Error(t, err)
	})
}

func TestMealItemStatus_String(t *testing.T) {
	t.Run("should name every status", func(t *testing.T) {
		assert.Equal(t, "Pending", order.MealItemPending.String())
		assert.Equal(t, "Preparing", order.MealItemPreparing.String())
		assert.Equal(t, "Completed", order.MealItemCompleted.String())
		assert.Equal(t, "Removed", order.MealItemRemoved.String())
		assert.Equal(t, "Unknown", order.MealItemStatus(42).String())
	})
}
