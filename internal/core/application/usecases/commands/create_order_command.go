package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput carries one requested line item across the application
// boundary. It is raw input: the handler converts it into a validated
// order.OrderItem before the aggregate is constructed.
type OrderItemInput struct {
	DishID   string
	DishName string
	Quantity int
	Price    decimal.Decimal
}

// DeliveryInfoInput carries the requested delivery details across the
// application boundary.
type DeliveryInfoInput struct {
	RecipientName  string
	RecipientPhone string
	Address        string
}

// CreateOrderCommand represents a request to create a new food-delivery order
// for an authenticated user. The user identity comes from the principal, the
// rest from the request body.
//
// Example:
//
//	userID, _ := kernel.NewUserID(principal)
//	merchantID, _ := kernel.NewMerchantID("merchant-001")
//	cmd, err := NewCreateOrderCommand(userID, merchantID, items, deliveryInfo, remark)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UserID
	merchantID   kernel.MerchantID
	items        []OrderItemInput
	deliveryInfo DeliveryInfoInput
	remark       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that both identifiers are constructed and that at least one item
// was requested. Per-field item and delivery-info rules are enforced later by
// the domain constructors; this only guards the command's own shape.
func NewCreateOrderCommand(
	userID kernel.UserID,
	merchantID kernel.MerchantID,
	items []OrderItemInput,
	deliveryInfo DeliveryInfoInput,
	remark string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		deliveryInfo: deliveryInfo,
		remark:       remark,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setUserID(userID),
		orderCommand.setMerchantID(merchantID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserID returns the identity of the ordering user.
func (c CreateOrderCommand) UserID() kernel.UserID {
	return c.userID
}

// MerchantID returns the merchant the order is placed with.
func (c CreateOrderCommand) MerchantID() kernel.MerchantID {
	return c.merchantID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// DeliveryInfo returns the requested delivery details.
func (c CreateOrderCommand) DeliveryInfo() DeliveryInfoInput {
	return c.deliveryInfo
}

// Remark returns the optional free-text remark.
func (c CreateOrderCommand) Remark() string {
	return c.remark
}

func (c *CreateOrderCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setMerchantID(merchantID kernel.MerchantID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}

	c.merchantID = merchantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("订单必须至少包含一个餐品"))
	}

	c.items = append([]OrderItemInput(nil), items...)
	return nil
}
