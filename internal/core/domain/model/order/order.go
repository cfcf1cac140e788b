package order

import (
	"errors"
	"time"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// maxRemarkLength is the upper bound on the optional order remark, in characters.
const maxRemarkLength = 200

// Order is the aggregate root for a food-delivery order. It owns the line
// items, delivery info, status, and the pricing breakdown computed at creation.
//
// Order follows these invariants:
//   - The items list is non-empty at all times
//   - The optional remark is limited to 200 characters
//   - Status starts at PendingPayment and transitions only to Paid via Pay
//   - Pricing is computed once at construction and never recomputed
//   - Can only be created through NewOrder or restored through RestoreOrder
//
// Whether every item belongs to the stated merchant is deliberately not
// enforced here; verifying it needs a dish/merchant lookup the domain does not
// have, so the caller owns that check.
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. The items slice is copied on the way
// in and on the way out, so callers can never mutate the aggregate's state.
type Order struct {
	id           kernel.OrderID
	orderNumber  OrderNumber
	userID       kernel.UserID
	merchantID   kernel.MerchantID
	items        []OrderItem
	deliveryInfo DeliveryInfo
	remark       string
	status       Status
	pricing      Pricing
	createdAt    time.Time
	updatedAt    time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order, generating its identifier, order number, and
// timestamps, and computing the pricing breakdown from the given items.
//
// Parameters:
//   - userID: the ordering user, taken from the authenticated principal
//   - merchantID: the merchant the order is placed with
//   - items: at least one validated line item
//   - deliveryInfo: validated recipient and address details
//   - remark: optional free text, at most 200 characters
//
// Returns a validation error when any identifier is unconstructed, the items
// list is empty, any item or the delivery info bypassed its constructor, or
// the remark exceeds 200 characters.
//
// Example:
//
//	o, err := order.NewOrder(userID, merchantID, items, deliveryInfo, "no cilantro")
//	if err != nil {
//	    // handle validation error
//	}
//	o.Status() // order.PendingPayment
func NewOrder(
	userID kernel.UserID,
	merchantID kernel.MerchantID,
	items []OrderItem,
	deliveryInfo DeliveryInfo,
	remark string,
) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setUserID(userID),
		o.setMerchantID(merchantID),
		o.setItems(items),
		o.setDeliveryInfo(deliveryInfo),
		o.setRemark(remark),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o.id = kernel.NewOrderID()
	o.orderNumber = NewOrderNumber()
	o.pricing = CalculatePricing(o.items)
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstitutes an Order from persisted state. The stored values
// are trusted: business rules are not re-checked and pricing is not recomputed,
// only type-level construction is verified.
func RestoreOrder(
	id kernel.OrderID,
	orderNumber OrderNumber,
	userID kernel.UserID,
	merchantID kernel.MerchantID,
	items []OrderItem,
	deliveryInfo DeliveryInfo,
	remark string,
	status Status,
	pricing Pricing,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		orderNumber.Validate(),
		userID.Validate(),
		merchantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		userID:        userID,
		merchantID:    merchantID,
		items:         append([]OrderItem(nil), items...),
		deliveryInfo:  deliveryInfo,
		remark:        remark,
		status:        status,
		pricing:       pricing,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or directly instantiated orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// OrderNumber returns the generated human-facing order number.
func (o *Order) OrderNumber() OrderNumber {
	return o.orderNumber
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UserID {
	return o.userID
}

// MerchantID returns the identifier of the merchant the order was placed with.
func (o *Order) MerchantID() kernel.MerchantID {
	return o.merchantID
}

// Items returns a copy of the order's line items, in their original order.
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// DeliveryInfo returns the recipient and address details.
func (o *Order) DeliveryInfo() DeliveryInfo {
	return o.deliveryInfo
}

// Remark returns the optional free-text remark, empty when none was given.
func (o *Order) Remark() string {
	return o.remark
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Pricing returns the breakdown computed at creation time.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Pay transitions the order from PendingPayment to Paid and refreshes
// updatedAt. Returns ErrOrderNotPayable from any other origin state. This is
// the only mutator on the aggregate.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setMerchantID(merchantID kernel.MerchantID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("订单必须至少包含一个餐品"))
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]OrderItem(nil), items...)
	return nil
}

func (o *Order) setDeliveryInfo(deliveryInfo DeliveryInfo) error {
	if err := deliveryInfo.Validate(); err != nil {
		return err
	}
	o.deliveryInfo = deliveryInfo
	return nil
}

func (o *Order) setRemark(remark string) error {
	if utf8.RuneCountInString(remark) > maxRemarkLength {
		return errs.NewValueIsInvalidErrorWithCause("remark", errors.New("备注长度不能超过200字符"))
	}
	o.remark = remark
	return nil
}
