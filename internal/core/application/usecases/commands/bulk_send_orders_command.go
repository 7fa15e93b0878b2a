package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrBulkSendOrdersCommandIsNotConstructed = errors.New(
	"BulkSendOrdersCommand must be created via NewBulkSendOrdersCommand constructor",
)

// BulkSendOrdersCommand sends several drafts at once. Assignees get one digest email
// for the whole batch instead of one email per order.
type BulkSendOrdersCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewBulkSendOrdersCommand(actor user.Actor, orderIDs []kernel.UUID) (BulkSendOrdersCommand, error) {
	errList := []error{actor.Validate()}
	if len(orderIDs) == 0 {
		errList = append(errList, errs.NewValueIsRequiredError("order ids"))
	}
	for _, id := range orderIDs {
		errList = append(errList, id.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return BulkSendOrdersCommand{}, err
	}

	return BulkSendOrdersCommand{
		actor:    actor,
		orderIDs: kernel.UniqueUUIDs(orderIDs),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c BulkSendOrdersCommand) Validate() error {
	return c.guard.Validate(ErrBulkSendOrdersCommandIsNotConstructed)
}

func (c BulkSendOrdersCommand) Actor() user.Actor {
	return c.actor
}

// OrderIDs returns the deduplicated ids in request order.
func (c BulkSendOrdersCommand) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}
