package commands

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ErrMultiMerchantOrder is reserved for the single-merchant rule: an order may
// only contain dishes of the merchant it is placed with. No code path returns
// it yet because verifying the rule needs a dish/merchant lookup service that
// does not exist; see validateSingleMerchant.
var ErrMultiMerchantOrder = errors.New("订单只能包含同一商家的餐品")

// PricingResult is the monetary breakdown returned to the caller.
type PricingResult struct {
	ItemsTotal   decimal.Decimal
	PackagingFee decimal.Decimal
	DeliveryFee  decimal.Decimal
	FinalAmount  decimal.Decimal
}

// CreateOrderResult is the outcome of a successful order creation.
type CreateOrderResult struct {
	OrderID     string
	OrderNumber string
	Status      string
	Pricing     PricingResult
	CreatedAt   time.Time
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Converts the command's raw inputs into domain value objects, constructs the
// Order aggregate (which validates invariants and computes pricing), and
// persists it within a single transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s created, total %s", result.OrderNumber, result.Pricing.FinalAmount)
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The whole use case runs in one unit of work: aggregate construction and the
// save of the header plus line-item rows commit or roll back together.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	if err := h.validateSingleMerchant(cmd); err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]order.OrderItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		dishID, err := kernel.NewDishID(input.DishID)
		if err != nil {
			return CreateOrderResult{}, err
		}

		item, err := order.NewOrderItem(dishID, input.DishName, input.Quantity, input.Price)
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)
	}

	deliveryInfo, err := order.NewDeliveryInfo(
		cmd.DeliveryInfo().RecipientName,
		cmd.DeliveryInfo().RecipientPhone,
		cmd.DeliveryInfo().Address,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(cmd.UserID(), cmd.MerchantID(), items, deliveryInfo, cmd.Remark())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:     newOrder.ID().String(),
		OrderNumber: newOrder.OrderNumber().String(),
		Status:      newOrder.Status().String(),
		Pricing: PricingResult{
			ItemsTotal:   newOrder.Pricing().ItemsTotal(),
			PackagingFee: newOrder.Pricing().PackagingFee(),
			DeliveryFee:  newOrder.Pricing().DeliveryFee(),
			FinalAmount:  newOrder.Pricing().FinalAmount(),
		},
		CreatedAt: newOrder.CreatedAt(),
	}, nil
}

// validateSingleMerchant would verify that every requested dish belongs to the
// merchant the order is placed with. OrderItemInput carries no merchant, so the
// check needs a dish lookup service; until one exists the caller is trusted and
// this always passes. A violation, once detectable, returns ErrMultiMerchantOrder.
func (h *CreateOrderCommandHandler) validateSingleMerchant(_ CreateOrderCommand) error {
	return nil
}
