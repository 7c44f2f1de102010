package commands_test

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a testify double for ports.OrderRepository.
type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, tableID int) (*order.Order, error) {
	args := m.Called(ctx, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AddMealItems(ctx context.Context, tableID int, items []*order.MealItem) (bool, error) {
	args := m.Called(ctx, tableID, items)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, tableID int, fn func(*order.Order) error) error {
	args := m.Called(ctx, tableID, fn)
	return args.Error(0)
}

func (m *MockOrderRepository) TableIDs(ctx context.Context) []int {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]int)
}

// capturingWorkerPool records submitted tasks instead of running them, so
// tests control exactly when a cooking job executes.
type capturingWorkerPool struct {
	tasks []func()
}

func (p *capturingWorkerPool) Execute(task func()) {
	p.tasks = append(p.tasks, task)
}

func (p *capturingWorkerPool) Workers() int { return 1 }

func (p *capturingWorkerPool) Shutdown() {}

// runAll executes every captured task synchronously, in submission order.
func (p *capturingWorkerPool) runAll() {
	for _, task := range p.tasks {
		task()
	}
	p.tasks = nil
}
