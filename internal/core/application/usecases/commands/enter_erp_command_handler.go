package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// EnterERPCommandHandler moves a completed order to entered_erp.
// A repeated call fails with order.ErrAlreadyEnteredERP before anything is written.
type EnterERPCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NoticeDispatcher
	policy     services.AuthorizationPolicy
	planner    services.NoticePlanner
}

func NewEnterERPCommandHandler(uowFactory OrderUoWFactory, dispatcher ports.NoticeDispatcher) EnterERPCommandHandler {
	return EnterERPCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAuthorizationPolicy(),
		planner:    services.NewNoticePlanner(),
	}
}

func (h *EnterERPCommandHandler) Handle(ctx context.Context, cmd EnterERPCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.AuthorizeEnterERP(actor); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.EnterERP(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatch(h.dispatcher, h.planner.ForERPEntry(o, actor), false)
	return o, nil
}
