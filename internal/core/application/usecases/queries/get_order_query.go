package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderQuery reads one order the caller may see.
type GetOrderQuery struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor user.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() user.Actor {
	return q.actor
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetails is a full order with the usernames of the people involved.
type OrderDetails struct {
	Order *order.Order

	// Usernames maps the creator and assignee ids to usernames. Unknown users are absent.
	Usernames map[kernel.UUID]string
}

// GetOrderHistoryQuery reads the whole audit trail of an order, newest first.
type GetOrderHistoryQuery struct {
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(actor user.Actor, orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) Actor() user.Actor {
	return q.actor
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// HistoryEntry is one change record with its author's username.
type HistoryEntry struct {
	Record    order.ChangeRecord
	ActorName string
}
