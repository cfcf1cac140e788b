// Package order provides domain entities and business logic for order management
// in the food-delivery system. It implements the Order aggregate root with its
// value objects, pricing rules, and the payment state transition.
//
// The package includes:
//   - Order: the aggregate root owning line items, delivery info, status, and pricing
//   - OrderItem: a validated line item with a derived subtotal
//   - DeliveryInfo: recipient name, phone, and address with format rules
//   - Pricing: the monetary breakdown computed once at creation time
//   - OrderNumber: the generated, immutable human-facing order number
//   - Status: a state machine with the single transition PendingPayment -> Paid
//
// Key business rules:
//   - Orders must contain at least one line item at all times
//   - The remark is optional and limited to 200 characters
//   - Pricing is computed at construction and never recalculated afterwards
//   - Only orders awaiting payment can be paid; Pay also refreshes updatedAt
//
// All monetary values use exact decimal arithmetic with two-digit scale
// semantics; binary floating point never enters the pricing path.
package order
