// Package kernel provides core domain primitives for the food-order system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes the identifier value objects shared by the aggregates:
//   - OrderID: unique identifier of an order, generated at creation time
//   - UserID: identifier of the ordering user, supplied by the auth layer
//   - MerchantID: identifier of the merchant the order is placed with
//   - DishID: identifier of a dish referenced by an order line item
//
// Identifiers are opaque strings compared by value. They enforce their own
// validation rules, are immutable, and are safe for concurrent use.
package kernel
