package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders visible to the caller, newest first.
//
// Example:
//
//	q, err := NewListOrdersQuery(actor, nil)
//	orders, err := handler.Handle(ctx, q)
type ListOrdersQuery struct {
	actor  user.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. status is optional and narrows the caller's scope.
func NewListOrdersQuery(actor user.Actor, status *order.Status) (ListOrdersQuery, error) {
	errList := []error{actor.Validate()}
	if status != nil {
		errList = append(errList, status.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	q := ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
	if status != nil {
		s := *status
		q.status = &s
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() user.Actor {
	return q.actor
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	ID          kernel.UUID
	CreatorID   kernel.UUID
	CreatorName string
	Title       string
	Description string
	City        string
	Status      order.Status
	ItemCount   int
	AssigneeIDs []kernel.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
