package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// KitchenReportJob periodically logs an aggregate view of the kitchen:
// table count and order/item counts by status. Runs every ten seconds.
type KitchenReportJob struct {
	handler queries.GetKitchenLoadQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKitchenReportJob creates a new job for kitchen load reporting.
// Uses GetKitchenLoadQueryHandler to snapshot the kitchen every ten seconds.
func NewKitchenReportJob(handler queries.GetKitchenLoadQueryHandler, logger *slog.Logger) *KitchenReportJob {
	return &KitchenReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "kitchen_report_job"),
	}
}

// Start begins the kitchen report job to run every ten seconds.
func (j *KitchenReportJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetKitchenLoadQuery()

		load, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Kitchen report job failed", "error", err)
			return
		}

		orders := make(map[string]int, len(load.OrdersByStatus))
		for status, count := range load.OrdersByStatus {
			orders[status.String()] = count
		}
		items := make(map[string]int, len(load.ItemsByStatus))
		for status, count := range load.ItemsByStatus {
			items[status.String()] = count
		}

		j.logger.InfoContext(ctx, "Kitchen load",
			"tables", load.Tables,
			"orders", orders,
			"meal_items", items,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen report job started (running every ten seconds)")
	return nil
}

// Stop stops the kitchen report job.
func (j *KitchenReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen report job stopped")
}
