// Package ports defines the contracts between the fulfillment core and its infrastructure:
// persistence of aggregates and audit data, and the opaque push and email sinks.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items and the assignee relation.
type OrderRepository interface {
	// Add persists a new order with its items and assignees.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the scalar fields of an existing order and replaces its
	// items and assignees wholesale.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with items and assignees.
	// Returns *errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the items, the assignee relation and then the order itself.
	// Change records must have been removed through AuditLogRepository.DeleteAllFor first.
	Delete(ctx context.Context, id kernel.UUID) error
}
