package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// OrderReader is the read-side port the handler needs: a by-id lookup that
// reconstitutes the full aggregate. Satisfied by the postgres order repository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}

// OrderItemResult is one line item of a retrieved order.
type OrderItemResult struct {
	DishID   string
	DishName string
	Quantity int
	Price    decimal.Decimal
}

// DeliveryInfoResult is the delivery details of a retrieved order.
type DeliveryInfoResult struct {
	RecipientName  string
	RecipientPhone string
	Address        string
}

// PricingResult is the stored monetary breakdown of a retrieved order.
type PricingResult struct {
	ItemsTotal   decimal.Decimal
	PackagingFee decimal.Decimal
	DeliveryFee  decimal.Decimal
	FinalAmount  decimal.Decimal
}

// GetOrderResult is the complete view of one order returned to its owner.
type GetOrderResult struct {
	OrderID      string
	OrderNumber  string
	UserID       string
	MerchantID   string
	Items        []OrderItemResult
	DeliveryInfo DeliveryInfoResult
	Remark       string
	Status       string
	Pricing      PricingResult
	CreatedAt    time.Time
}

// GetOrderQueryHandler retrieves a single order with an ownership check.
// A missing order and an order owned by someone else produce the same
// not-found error, so callers cannot probe for other users' orders.
type GetOrderQueryHandler struct {
	orders OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup. Read-only: the stored pricing breakdown is
// returned as persisted, never recomputed.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderResult, error) {
	if err := query.Validate(); err != nil {
		return GetOrderResult{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderResult{}, err
	}

	if !o.UserID().IsEqual(query.UserID()) {
		// Deliberately identical to the missing-order error.
		return GetOrderResult{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	items := make([]OrderItemResult, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResult{
			DishID:   item.DishID().String(),
			DishName: item.DishName(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	return GetOrderResult{
		OrderID:     o.ID().String(),
		OrderNumber: o.OrderNumber().String(),
		UserID:      o.UserID().String(),
		MerchantID:  o.MerchantID().String(),
		Items:       items,
		DeliveryInfo: DeliveryInfoResult{
			RecipientName:  o.DeliveryInfo().RecipientName(),
			RecipientPhone: o.DeliveryInfo().RecipientPhone(),
			Address:        o.DeliveryInfo().Address(),
		},
		Remark: o.Remark(),
		Status: o.Status().String(),
		Pricing: PricingResult{
			ItemsTotal:   o.Pricing().ItemsTotal(),
			PackagingFee: o.Pricing().PackagingFee(),
			DeliveryFee:  o.Pricing().DeliveryFee(),
			FinalAmount:  o.Pricing().FinalAmount(),
		},
		CreatedAt: o.CreatedAt(),
	}, nil
}
