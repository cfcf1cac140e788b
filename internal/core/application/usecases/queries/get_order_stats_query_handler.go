package queries

import (
	"context"

	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/order"
)

// GetOrderStatsQueryHandler counts orders per status straight from the
// database. Bypasses the aggregate on purpose: the read model here is a
// handful of counters, not reconstituted orders.
//
// Example:
//
//	handler := NewGetOrderStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, NewGetOrderStatsQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders awaiting payment\n", stats.PendingPayment)
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order stats queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the grouped count over the orders table.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	var stats GetOrderStatsQueryResponse
	for rows.Next() {
		var status string
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		switch status {
		case order.PendingPayment.String():
			stats.PendingPayment = count
		case order.Paid.String():
			stats.Paid = count
		case order.Cancelled.String():
			stats.Cancelled = count
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return stats, nil
}
