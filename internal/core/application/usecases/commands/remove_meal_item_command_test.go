package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveMealItemCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		itemID := kernel.NewUUID()

		cmd, err := commands.NewRemoveMealItemCommand(7, itemID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 7, cmd.TableID())
		assert.True(t, cmd.MealItemID().IsEqual(itemID))
	})

	t.Run("should fail with invalid table id", func(t *testing.T) {
		_, err := commands.NewRemoveMealItemCommand(-1, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed meal item id", func(t *testing.T) {
		_, err := commands.NewRemoveMealItemCommand(7, kernel.UUID{})

		require.Error(t, err)
	})
}

func TestRemoveMealItemCommand_Validate(t *testing.T) {
	t.Run("should fail for zero value command", func(t *testing.T) {
		cmd := commands.RemoveMealItemCommand{} // not constructed properly

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrRemoveMealItemCommandIsNotConstructed, err)
	})
}
