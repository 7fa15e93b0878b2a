package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
)

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error

	// Get returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Update persists the read flag.
	Update(ctx context.Context, n *notification.Notification) error
}

// PushSubscriptionRepository is the explicit store of push endpoints.
type PushSubscriptionRepository interface {
	// Save stores a subscription; an existing one with the same endpoint is replaced.
	Save(ctx context.Context, s notification.PushSubscription) error

	ListFor(ctx context.Context, userID kernel.UUID) ([]notification.PushSubscription, error)

	// Prune removes one subscription. Removing an unknown id is not an error.
	Prune(ctx context.Context, id kernel.UUID) error

	// PruneExpired removes every subscription that expired at or before now
	// and returns how many were removed.
	PruneExpired(ctx context.Context, now time.Time) (int64, error)
}
