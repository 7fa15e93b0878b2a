package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(ctx context.Context, query ListNotificationsQuery) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			message,
			category,
			is_read,
			created_at
		FROM notifications
		WHERE recipient_id = ?
			AND (NOT ? OR is_read = FALSE)
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.Actor().ID().Bytes(), query.UnreadOnly(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var (
			view     NotificationView
			id       uuid.UUID
			orderID  uuid.NullUUID
			category string
		)

		if err = rows.Scan(&id, &orderID, &view.Message, &category, &view.IsRead, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderID.Valid {
			oid, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.OrderID = &oid
		}
		if view.Category, err = notification.ParseCategory(category); err != nil {
			return nil, err
		}

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
