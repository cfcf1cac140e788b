package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The aggregate is saved and loaded as one unit: the header together with its
// line items and the embedded delivery-info and pricing fields.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line-item rows.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update upserts an existing order aggregate: the header row is updated
	// and the line-item rows are replaced wholesale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, reconstituted
	// from storage without invariant re-checking. Returns an
	// errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
