package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var ErrEnterERPCommandIsNotConstructed = errors.New(
	"EnterERPCommand must be created via NewEnterERPCommand constructor",
)

// EnterERPCommand hands a completed order over to the ERP.
type EnterERPCommand struct { //nolint:recvcheck //using for validation
	actor   user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewEnterERPCommand(actor user.Actor, orderID kernel.UUID) (EnterERPCommand, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return EnterERPCommand{}, err
	}
	return EnterERPCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c EnterERPCommand) Validate() error {
	return c.guard.Validate(ErrEnterERPCommandIsNotConstructed)
}

func (c EnterERPCommand) Actor() user.Actor {
	return c.actor
}

func (c EnterERPCommand) OrderID() kernel.UUID {
	return c.orderID
}
