package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// PruneExpiredSubscriptionsCommand removes push subscriptions whose expiry is at or before Now.
type PruneExpiredSubscriptionsCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

var ErrPruneExpiredSubscriptionsCommandIsNotConstructed = errors.New(
	"PruneExpiredSubscriptionsCommand must be created via NewPruneExpiredSubscriptionsCommand constructor",
)

func NewPruneExpiredSubscriptionsCommand(now time.Time) (PruneExpiredSubscriptionsCommand, error) {
	if now.IsZero() {
		return PruneExpiredSubscriptionsCommand{}, errs.NewValueIsRequiredError("now")
	}
	return PruneExpiredSubscriptionsCommand{now: now, guard: guard.NewConstructorGuard()}, nil
}

func (c PruneExpiredSubscriptionsCommand) Validate() error {
	return c.guard.Validate(ErrPruneExpiredSubscriptionsCommandIsNotConstructed)
}

func (c PruneExpiredSubscriptionsCommand) Now() time.Time {
	return c.now
}
