package commands

import (
	"context"
)

// PruneExpiredSubscriptionsCommandHandler is run by the scheduler; it reports how many
// subscriptions were removed.
type PruneExpiredSubscriptionsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewPruneExpiredSubscriptionsCommandHandler(uowFactory NotificationUoWFactory) PruneExpiredSubscriptionsCommandHandler {
	return PruneExpiredSubscriptionsCommandHandler{uowFactory: uowFactory}
}

func (h *PruneExpiredSubscriptionsCommandHandler) Handle(
	ctx context.Context,
	cmd PruneExpiredSubscriptionsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pruned, err := uow.PushSubscriptionRepository().PruneExpired(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return pruned, nil
}
