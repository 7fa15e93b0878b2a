package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/activity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
)

// UserRepository reads the profiles needed for delivery. Users are managed elsewhere.
type UserRepository interface {
	// Get returns *errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (user.User, error)

	// GetMany returns the users that exist among ids; unknown ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]user.User, error)
}

// ActivityLogRepository appends administrative journal entries.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry activity.Entry) error
}
