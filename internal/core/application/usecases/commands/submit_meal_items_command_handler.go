package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// ErrSnapshotUnavailable indicates that the order snapshot could not be
// retrieved immediately after a successful registration. Under correct
// locking this cannot happen; it is surfaced as an internal fault rather
// than retried.
var ErrSnapshotUnavailable = errors.New("order snapshot unavailable after item registration")

// DefaultCookingUnit is the real duration of one simulated cooking minute.
// Cooking is compressed so a three-minute dish occupies a worker for three
// seconds.
const DefaultCookingUnit = time.Second

// SubmitMealItemsCommandHandler is the fulfillment coordinator: it turns a
// validated batch of requested dishes into repository mutations and one
// cooking job per item on the worker pool.
//
// The returned snapshot is taken before any cooking job has necessarily
// run, so items may still read Pending in the response while workers are
// already cooking them; later queries observe the progress.
type SubmitMealItemsCommandHandler struct {
	orderRepository ports.OrderRepository
	workerPool      ports.WorkerPool
	cookingUnit     time.Duration
	logger          *slog.Logger
}

// NewSubmitMealItemsCommandHandler creates the fulfillment coordinator.
// cookingUnit scales simulated cooking minutes into real sleep time; a
// non-positive value falls back to DefaultCookingUnit.
func NewSubmitMealItemsCommandHandler(
	orderRepository ports.OrderRepository,
	workerPool ports.WorkerPool,
	cookingUnit time.Duration,
	logger *slog.Logger,
) SubmitMealItemsCommandHandler {
	if cookingUnit <= 0 {
		cookingUnit = DefaultCookingUnit
	}
	if logger == nil {
		logger = slog.Default()
	}

	return SubmitMealItemsCommandHandler{
		orderRepository: orderRepository,
		workerPool:      workerPool,
		cookingUnit:     cookingUnit,
		logger:          logger.With("component", "fulfillment_coordinator"),
	}
}

// Handle processes the batch submission:
//  1. Creates one Pending meal item per requested dish.
//  2. Appends them to the table's order; an absent order is reported as
//     not found and nothing else happens.
//  3. Submits one cooking job per item to the worker pool.
//  4. Returns the current order snapshot without waiting for any job.
func (h *SubmitMealItemsCommandHandler) Handle(ctx context.Context, cmd SubmitMealItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]*order.MealItem, 0, len(cmd.MenuItems()))
	for _, menuItem := range cmd.MenuItems() {
		item, err := order.NewMealItem(menuItem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	existed, err := h.orderRepository.AddMealItems(ctx, cmd.TableID(), items)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, errs.NewObjectNotFoundError("tableId", cmd.TableID())
	}

	for _, item := range items {
		cookingTime := time.Duration(item.CookingMinutes()) * h.cookingUnit
		h.workerPool.Execute(h.cookingJob(cmd.TableID(), item.ID(), cookingTime))
	}

	snapshot, err := h.orderRepository.Get(ctx, cmd.TableID())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotUnavailable, err)
	}

	return snapshot, nil
}

// cookingJob builds the task for one meal item's full preparation
// lifecycle. The closure carries only the data it needs: table id, item id,
// and the cooking duration.
//
// The item's removed flag is checked under the table lock when the job
// starts; a removal that lands while the worker is already sleeping does
// not stop the item from completing. The sleep itself occupies the worker
// for the whole cooking time, outside any lock: one worker cannot cook two
// items at once.
func (h *SubmitMealItemsCommandHandler) cookingJob(tableID int, itemID kernel.UUID, cookingTime time.Duration) func() {
	return func() {
		ctx := context.Background()
		logger := h.logger.With("table_id", tableID, "meal_item_id", itemID.String())

		err := h.orderRepository.Update(ctx, tableID, func(o *order.Order) error {
			return o.StartPreparingMealItem(itemID)
		})
		if err != nil {
			// A vanished order or a removed item ends the job with no
			// effect; anything else is a logic fault worth logging.
			if !errors.Is(err, errs.ErrObjectNotFound) && !errors.Is(err, order.ErrMealItemRemoved) {
				logger.Error("cooking job could not start", "error", err)
			}
			return
		}
		logger.Info("start preparing")

		time.Sleep(cookingTime)

		err = h.orderRepository.Update(ctx, tableID, func(o *order.Order) error {
			return o.CompleteMealItem(itemID)
		})
		if err != nil {
			logger.Error("cooking job could not complete", "error", err)
			return
		}
		logger.Info("completed")
	}
}
