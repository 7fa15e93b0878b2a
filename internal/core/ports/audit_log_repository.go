package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// AuditLogRepository stores the change records of orders. Records are never updated.
type AuditLogRepository interface {
	// Append stores records in one statement.
	Append(ctx context.Context, records ...order.ChangeRecord) error

	// ListFor returns the records of an order newest first. limit <= 0 means no limit.
	ListFor(ctx context.Context, orderID kernel.UUID, limit int) ([]order.ChangeRecord, error)

	// DeleteAllFor removes every record of an order. Only order deletion calls it.
	DeleteAllFor(ctx context.Context, orderID kernel.UUID) error
}
