// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every mutating command follows the same pipeline: validate, load, authorize,
// apply, persist with change records, commit, then hand notices to the dispatcher.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AuditLogRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	ActivityLogRepoFactory interface {
		ActivityLogRepository() ports.ActivityLogRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	PushSubscriptionRepoFactory interface {
		PushSubscriptionRepository() ports.PushSubscriptionRepository
	}

	// OrderUoW writes an order together with its change records.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderRepository().Update(ctx, o)
	//   err = uow.AuditLogRepository().Append(ctx, records...)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AuditLogRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AdminUoW additionally journals the administrator's action.
	AdminUoW interface {
		OrderUoW
		ActivityLogRepoFactory
	}

	AdminUoWFactory interface {
		Create() AdminUoW
	}

	// NotificationUoW covers the recipient-side notification state.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
		PushSubscriptionRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
