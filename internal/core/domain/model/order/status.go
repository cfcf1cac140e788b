package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
)

// ErrOrderNotPayable is returned when Pay is attempted on an order that is not
// awaiting payment. It carries the user-facing message and maps to an
// illegal-state (409) response at the HTTP boundary.
var ErrOrderNotPayable = errors.New("只有待支付状态的订单才能支付")

// Status represents the lifecycle state of an order.
// It implements a state machine with a single allowed transition to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	PendingPayment ──> Paid
//
// Cancelled exists as a recognized persisted state but no in-process
// transition produces it; cancellation is owned by flows outside this service.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status when an order is first created.
	// Orders in this status are waiting for the user to pay.
	PendingPayment

	// Paid indicates the order has been paid for.
	Paid

	// Cancelled indicates the order was cancelled before payment.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		PendingPayment: "PENDING_PAYMENT",
		Paid:           "PAID",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPayment: "PENDING_PAYMENT",
		Paid:           "PAID",
		Cancelled:      "CANCELLED",
	}
}

// StatusFromString parses a persisted status name back into a Status value.
// Used when reconstituting orders from storage, where status is stored as its
// string name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: PendingPayment, Paid, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status as exposed over the API and persisted
// in storage. Returns "UNKNOWN" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - PendingPayment -> Paid
//
// Any other origin state returns ErrOrderNotPayable. This method is used by
// Order.Pay to enforce the transition.
func (s Status) Pay() (Status, error) {
	if s != PendingPayment {
		return 0, ErrOrderNotPayable
	}
	return Paid, nil
}
