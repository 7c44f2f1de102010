package cmd

import (
	"log/slog"

	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"
	"restaurant/internal/pkg/workerpool"
)

// CompositionRoot wires the application together: the in-memory order
// repository, the kitchen worker pool, and the handlers built on top of
// them. Close tears everything down in dependency order.
type CompositionRoot struct {
	orderRepository *orderrepo.Repository
	kitchenPool     *workerpool.Pool
	jobManager      *jobs.JobManager
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := workerpool.New(config.KitchenWorkers, logger)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		orderRepository: orderrepo.NewRepository(),
		kitchenPool:     pool,
		logger:          logger,
	}
	root.jobManager = jobs.NewJobManager(root.CreateGetKitchenLoadQueryHandler(), logger)

	return root, nil
}

// StartJobs starts the background jobs. Call once after construction.
func (c *CompositionRoot) StartJobs() error {
	return c.jobManager.StartAll()
}

// Close stops the background jobs and drains the kitchen: the worker pool
// finishes every queued cooking job before Close returns.
func (c *CompositionRoot) Close() {
	c.jobManager.StopAll()
	c.kitchenPool.Shutdown()
}

func (c *CompositionRoot) CreateOpenOrderCommandHandler() commands.OpenOrderCommandHandler {
	return commands.NewOpenOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateSubmitMealItemsCommandHandler() commands.SubmitMealItemsCommandHandler {
	return commands.NewSubmitMealItemsCommandHandler(
		c.orderRepository, c.kitchenPool, commands.DefaultCookingUnit, c.logger)
}

func (c *CompositionRoot) CreateRemoveMealItemCommandHandler() commands.RemoveMealItemCommandHandler {
	return commands.NewRemoveMealItemCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetKitchenLoadQueryHandler() queries.GetKitchenLoadQueryHandler {
	return queries.NewGetKitchenLoadQueryHandler(c.orderRepository)
}
