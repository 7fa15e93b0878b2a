package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// RecentHistoryLimit is how many change records an update response carries.
const RecentHistoryLimit = 10

// UpdateOrderResult is the order after the patch plus its most recent change records.
type UpdateOrderResult struct {
	Order   *order.Order
	History []order.ChangeRecord
}

// UpdateOrderCommandHandler runs the mutation pipeline: load, authorize, diff and apply,
// persist the order with its change records, commit, then notify.
//
// A failing step before commit leaves no change records behind and sends nothing.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NoticeDispatcher
	policy     services.AuthorizationPolicy
	planner    services.NoticePlanner
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher ports.NoticeDispatcher) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAuthorizationPolicy(),
		planner:    services.NewNoticePlanner(),
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (UpdateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	auditRepo := uow.AuditLogRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderResult{}, err
	}

	actor := cmd.Actor()
	if err = h.policy.AuthorizeMutate(actor, o); err != nil {
		return UpdateOrderResult{}, err
	}

	now := time.Now().UTC()
	mutation, err := o.ApplyPatch(cmd.Patch(), now)
	if err != nil {
		return UpdateOrderResult{}, err
	}

	records, err := mutation.ChangeRecords(o.ID(), actor.ID(), now)
	if err != nil {
		return UpdateOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return UpdateOrderResult{}, err
	}
	if err = auditRepo.Append(ctx, records...); err != nil {
		return UpdateOrderResult{}, err
	}

	history, err := auditRepo.ListFor(ctx, o.ID(), RecentHistoryLimit)
	if err != nil {
		return UpdateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderResult{}, err
	}

	dispatch(h.dispatcher, h.planner.ForMutation(o, mutation, actor), cmd.SuppressEmail())
	return UpdateOrderResult{Order: o, History: history}, nil
}
