package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
	ErrAdminDeleteOrderCommandIsNotConstructed = errors.New(
		"AdminDeleteOrderCommand must be created via NewAdminDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand removes an order on behalf of its creator.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actor user.Actor, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AdminDeleteOrderCommand removes any order and journals the action.
type AdminDeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdminDeleteOrderCommand(actor user.Actor, orderID kernel.UUID) (AdminDeleteOrderCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return AdminDeleteOrderCommand{}, err
	}
	return AdminDeleteOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdminDeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdminDeleteOrderCommandIsNotConstructed)
}

func (c AdminDeleteOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c AdminDeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
