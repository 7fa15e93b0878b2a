package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/activity"
	"fulfillment/internal/core/domain/services"
)

// DeleteOrderCommandHandler deletes an order, its items, its assignments and its
// change records in one transaction. Only the creator may do this.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AuthorizationPolicy
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeDelete(cmd.Actor(), o); err != nil {
		return err
	}

	if err = uow.AuditLogRepository().DeleteAllFor(ctx, o.ID()); err != nil {
		return err
	}
	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// AdminDeleteOrderCommandHandler lets an admin delete any order. The deletion and
// its activity-log entry commit together.
type AdminDeleteOrderCommandHandler struct {
	uowFactory AdminUoWFactory
	policy     services.AuthorizationPolicy
}

func NewAdminDeleteOrderCommandHandler(uowFactory AdminUoWFactory) AdminDeleteOrderCommandHandler {
	return AdminDeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAuthorizationPolicy(),
	}
}

func (h *AdminDeleteOrderCommandHandler) Handle(ctx context.Context, cmd AdminDeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := h.policy.AuthorizeAdminDelete(actor); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	entry, err := activity.NewEntry(actor.ID(), activity.ActionDeleteOrder, activity.EntityOrder, o.ID(),
		map[string]any{
			"title":     o.Title(),
			"creatorId": o.CreatorID().String(),
			"status":    o.Status().String(),
		}, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().DeleteAllFor(ctx, o.ID()); err != nil {
		return err
	}
	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}
	if err = uow.ActivityLogRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
