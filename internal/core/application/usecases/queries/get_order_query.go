// Package queries contains read-only operations in the CQRS architecture.
// Query handlers never mutate state; they map stored data to result DTOs.
package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order on behalf of the requesting user.
// The requester's identity is part of the query: orders owned by other users
// are reported as absent, so existence never leaks across users.
//
// Example:
//
//	orderID, _ := kernel.OrderIDFromString(pathParam)
//	userID, _ := kernel.NewUserID(principal)
//	query, err := NewGetOrderQuery(orderID, userID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	userID  kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order as seen by one user.
// Both identifiers must be constructed values.
func NewGetOrderQuery(orderID kernel.OrderID, userID kernel.UserID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setUserID(userID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// UserID returns the identity of the requesting user.
func (q GetOrderQuery) UserID() kernel.UserID {
	return q.userID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
