package order

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through the NewOrderItem constructor.
var ErrOrderItemIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderItem must be created via NewOrderItem constructor",
)

// OrderItem is a validated line item of an order: a dish, its display name,
// the ordered quantity, and the unit price at ordering time.
//
// OrderItem is immutable. The subtotal is derived, never stored.
//
// Example:
//
//	dishID, _ := kernel.NewDishID("dish-001")
//	item, err := order.NewOrderItem(dishID, "宫保鸡丁", 2, decimal.RequireFromString("25.00"))
//	if err != nil {
//	    // handle validation error
//	}
//	item.Subtotal() // 50.00
type OrderItem struct {
	dishID   kernel.DishID
	dishName string
	quantity int
	price    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewOrderItem creates a validated line item.
//
// Validation rules:
//   - dishID must be a constructed identifier
//   - dishName must not be blank
//   - quantity must be at least 1
//   - price must be zero or positive
func NewOrderItem(
	dishID kernel.DishID,
	dishName string,
	quantity int,
	price decimal.Decimal,
) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setDishID(dishID),
		item.setDishName(dishName),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewOrderItem.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// DishID returns the identifier of the ordered dish.
func (i OrderItem) DishID() kernel.DishID {
	return i.dishID
}

// DishName returns the dish display name captured at ordering time.
func (i OrderItem) DishName() string {
	return i.dishName
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured at ordering time.
func (i OrderItem) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns price multiplied by quantity using exact decimal arithmetic.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *OrderItem) setDishID(dishID kernel.DishID) error {
	if err := dishID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dishId", errors.New("餐品ID不能为空"))
	}
	i.dishID = dishID
	return nil
}

func (i *OrderItem) setDishName(dishName string) error {
	if strings.TrimSpace(dishName) == "" {
		return errs.NewValueIsRequiredErrorWithCause("dishName", errors.New("餐品名称不能为空"))
	}
	i.dishName = dishName
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("数量必须大于0"))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New("价格必须大于等于0"))
	}
	i.price = price
	return nil
}
