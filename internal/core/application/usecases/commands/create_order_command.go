package commands

import (
	"errors"
	"slices"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a maker's request to open a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, order.Draft{
//	    Title: "Stationery",
//	    Items: []order.ItemInput{{Name: "book", Quantity: 1}},
//	    AssigneeIDs: []kernel.UUID{takerID},
//	}, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor         user.Actor
	draft         order.Draft
	suppressEmail bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the caller and the supplied items.
// Everything else about the draft is checked by the order aggregate.
func NewCreateOrderCommand(actor user.Actor, draft order.Draft, suppressEmail bool) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		suppressEmail: suppressEmail,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDraft(draft),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() user.Actor {
	return c.actor
}

// Draft returns a copy of the requested order fields.
func (c CreateOrderCommand) Draft() order.Draft {
	d := c.draft
	d.Items = slices.Clone(c.draft.Items)
	d.AssigneeIDs = slices.Clone(c.draft.AssigneeIDs)
	return d
}

// SuppressEmail reports whether assignees should get in-app and push only.
func (c CreateOrderCommand) SuppressEmail() bool {
	return c.suppressEmail
}

func (c *CreateOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setDraft(draft order.Draft) error {
	patch := order.Patch{Items: &draft.Items, AssigneeIDs: &draft.AssigneeIDs}
	if err := patch.Validate(); err != nil {
		return err
	}

	c.draft = draft
	c.draft.Items = slices.Clone(draft.Items)
	c.draft.AssigneeIDs = slices.Clone(draft.AssigneeIDs)
	return nil
}
