package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery lists the caller's own notifications, newest first.
type ListNotificationsQuery struct {
	actor      user.Actor
	unreadOnly bool
	limit      int

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery builds the query. A zero limit means the default of 50.
func NewListNotificationsQuery(actor user.Actor, unreadOnly bool, limit int) (ListNotificationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	if limit == 0 {
		limit = defaultNotificationLimit
	}
	if limit < 0 || limit > maxNotificationLimit {
		return ListNotificationsQuery{}, errs.NewValueIsOutOfRangeErrorWithCause("limit", limit, 1, maxNotificationLimit,
			fmt.Errorf("limit must be between 1 and %d", maxNotificationLimit))
	}

	return ListNotificationsQuery{
		actor:      actor,
		unreadOnly: unreadOnly,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

func (q ListNotificationsQuery) Actor() user.Actor {
	return q.actor
}

func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

func (q ListNotificationsQuery) Limit() int {
	return q.limit
}

type NotificationView struct {
	ID        kernel.UUID
	OrderID   *kernel.UUID
	Message   string
	Category  notification.Category
	IsRead    bool
	CreatedAt time.Time
}
