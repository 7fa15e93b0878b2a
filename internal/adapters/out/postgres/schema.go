package postgres

import (
	"context"
	"fmt"

	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns or reads, in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderAssignmentDTO{},
		&auditrepo.ChangeRecordDTO{},
		&notificationrepo.NotificationDTO{},
		&notificationrepo.PushSubscriptionDTO{},
		&userrepo.ActivityLogDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Truncate empties every table. Tests use it between cases.
func Truncate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(`TRUNCATE TABLE
		order_items, order_assignments, order_logs, notifications,
		push_subscriptions, activity_logs, orders, users`).Error
}
