package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterPushSubscriptionCommandIsNotConstructed = errors.New(
	"RegisterPushSubscriptionCommand must be created via NewRegisterPushSubscriptionCommand constructor",
)

// RegisterPushSubscriptionCommand stores a browser push endpoint for the caller.
type RegisterPushSubscriptionCommand struct { //nolint:recvcheck //using for validation
	subscription notification.PushSubscription

	guard guard.ConstructorGuard
}

func NewRegisterPushSubscriptionCommand(
	actor user.Actor,
	endpoint, p256dh, auth string,
	expiresAt *time.Time,
) (RegisterPushSubscriptionCommand, error) {
	if err := actor.Validate(); err != nil {
		return RegisterPushSubscriptionCommand{}, err
	}

	sub, err := notification.NewPushSubscription(actor.ID(), endpoint, p256dh, auth, expiresAt)
	if err != nil {
		return RegisterPushSubscriptionCommand{}, err
	}

	return RegisterPushSubscriptionCommand{
		subscription: sub,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterPushSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPushSubscriptionCommandIsNotConstructed)
}

func (c RegisterPushSubscriptionCommand) Subscription() notification.PushSubscription {
	return c.subscription
}
