package kernel

import (
	"github.com/google/uuid"

	"foodorder/internal/pkg/errs"
)

// OrderID is a value object identifying an Order aggregate.
// The zero value is invalid; create one with NewOrderID or OrderIDFromString.
//
// Example usage:
//
//	// Generate an identifier for a new order
//	id := kernel.NewOrderID()
//
//	// Rebuild one from persistence
//	id, err := kernel.OrderIDFromString("8db482d1-...")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID generates a new random order identifier.
// This is the primary way to mint identifiers at order creation time.
func NewOrderID() OrderID {
	return OrderID{value: uuid.NewString()}
}

// OrderIDFromString rebuilds an OrderID from its string form, typically when
// reconstructing an order from persistence or parsing a request path parameter.
// Returns an error if the string is empty.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	return OrderID{value: s}, nil
}

// String returns the identifier's string representation.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns an error if the identifier is a zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	return nil
}

// UserID is a value object identifying the user who placed an order.
// The value comes from the authenticated principal, never from the request body.
type UserID struct {
	value string
}

// NewUserID creates a UserID from the authenticated principal's identity.
// Returns an error if the string is empty.
func NewUserID(s string) (UserID, error) {
	if s == "" {
		return UserID{}, errs.NewValueIsRequiredError("userId")
	}
	return UserID{value: s}, nil
}

// String returns the identifier's string representation.
func (id UserID) String() string {
	return id.value
}

// IsEqual compares two user identifiers by value.
func (id UserID) IsEqual(other UserID) bool {
	return id.value == other.value
}

// Validate returns an error if the identifier is a zero value.
func (id UserID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	return nil
}

// MerchantID is a value object identifying the merchant an order is placed with.
type MerchantID struct {
	value string
}

// NewMerchantID creates a MerchantID from its string form.
// Returns an error if the string is empty.
func NewMerchantID(s string) (MerchantID, error) {
	if s == "" {
		return MerchantID{}, errs.NewValueIsRequiredError("merchantId")
	}
	return MerchantID{value: s}, nil
}

// String returns the identifier's string representation.
func (id MerchantID) String() string {
	return id.value
}

// IsEqual compares two merchant identifiers by value.
func (id MerchantID) IsEqual(other MerchantID) bool {
	return id.value == other.value
}

// Validate returns an error if the identifier is a zero value.
func (id MerchantID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("merchantId")
	}
	return nil
}

// DishID is a value object identifying a dish referenced by an order line item.
type DishID struct {
	value string
}

// NewDishID creates a DishID from its string form.
// Returns an error if the string is empty.
func NewDishID(s string) (DishID, error) {
	if s == "" {
		return DishID{}, errs.NewValueIsRequiredError("dishId")
	}
	return DishID{value: s}, nil
}

// String returns the identifier's string representation.
func (id DishID) String() string {
	return id.value
}

// IsEqual compares two dish identifiers by value.
func (id DishID) IsEqual(other DishID) bool {
	return id.value == other.value
}

// Validate returns an error if the identifier is a zero value.
func (id DishID) Validate() error {
	if id.value == "" {
		return errs.NewValueIsRequiredError("dishId")
	}
	return nil
}
