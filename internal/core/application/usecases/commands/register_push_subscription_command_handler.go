package commands

import (
	"context"
)

// RegisterPushSubscriptionCommandHandler upserts a push subscription by endpoint.
type RegisterPushSubscriptionCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewRegisterPushSubscriptionCommandHandler(uowFactory NotificationUoWFactory) RegisterPushSubscriptionCommandHandler {
	return RegisterPushSubscriptionCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterPushSubscriptionCommandHandler) Handle(ctx context.Context, cmd RegisterPushSubscriptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PushSubscriptionRepository().Save(ctx, cmd.Subscription()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
