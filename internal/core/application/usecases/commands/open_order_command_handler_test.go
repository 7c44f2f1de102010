package commands_test

import (
	"context"
	"testing"

	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewOpenOrderCommand(7)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewOpenOrderCommandHandler(repo)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestOpenOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.OpenOrderCommand{} // not constructed properly

	repo := new(MockOrderRepository)
	h := commands.NewOpenOrderCommandHandler(repo)

	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Add")
}

func TestOpenOrderCommandHandler_Handle_Conflict(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewOpenOrderCommand(7)

	repo := new(MockOrderRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(orderrepo.ErrOrderAlreadyExists).Once()

	h := commands.NewOpenOrderCommandHandler(repo)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, orderrepo.ErrOrderAlreadyExists)
	repo.AssertExpectations(t)
}
