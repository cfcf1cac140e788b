package order

import (
	"fmt"
	"math/rand/v2"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrOrderNumberIsNotConstructed is returned when an OrderNumber was not created
// through NewOrderNumber or OrderNumberFromString.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString",
)

// OrderNumber is the human-facing order number: 14 timestamp digits
// (yyyyMMddHHmmss) followed by 6 random decimal digits, 20 characters total.
// It is generated once at order creation and immutable thereafter.
//
// The random suffix is non-cryptographic and no uniqueness check is made
// against storage, so collisions under concurrent creation within the same
// second are possible. This mirrors the upstream behavior and is tolerated
// because the order number is not a correctness-critical identifier.
type OrderNumber struct {
	value string

	guard guard.ConstructorGuard
}

// NewOrderNumber generates a fresh order number from the current time.
func NewOrderNumber() OrderNumber {
	return OrderNumber{
		value: time.Now().Format("20060102150405") + fmt.Sprintf("%06d", rand.IntN(1000000)),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderNumberFromString rebuilds an OrderNumber from its persisted form.
// The stored value is trusted; only emptiness is rejected.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	return OrderNumber{value: s, guard: guard.NewConstructorGuard()}, nil
}

// String returns the order number's string representation.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate ensures the OrderNumber was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
