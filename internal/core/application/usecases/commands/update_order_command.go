package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a partial edit of an order by its creator, an assignee or an admin.
//
// Example:
//
//	qty := []order.ItemInput{{Name: "book", Quantity: 3}}
//	cmd, err := NewUpdateOrderCommand(actor, orderID, order.Patch{Items: &qty}, false)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         user.Actor
	orderID       kernel.UUID
	patch         order.Patch
	suppressEmail bool

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand rejects malformed patches before anything is loaded.
func NewUpdateOrderCommand(
	actor user.Actor,
	orderID kernel.UUID,
	patch order.Patch,
	suppressEmail bool,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		suppressEmail: suppressEmail,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setPatch(patch),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Actor() user.Actor {
	return c.actor
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c UpdateOrderCommand) SuppressEmail() bool {
	return c.suppressEmail
}

func (c *UpdateOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setPatch(patch order.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	c.patch = patch
	return nil
}
