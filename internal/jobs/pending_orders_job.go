package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically reports how many orders sit in each status.
// Runs every minute; the counts go to the structured log for operators
// watching for orders stuck in PENDING_PAYMENT.
type PendingOrdersJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a new job for reporting order status counts.
// Uses GetOrderStatsQueryHandler, a read-only path: the job never mutates orders.
func NewPendingOrdersJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start begins the order stats job to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order status counts",
			"pending_payment", stats.PendingPayment,
			"paid", stats.Paid,
			"cancelled", stats.Cancelled,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the order stats job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}
