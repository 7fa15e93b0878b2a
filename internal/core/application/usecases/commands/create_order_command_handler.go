package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// CreateOrderCommandHandler opens a new order and tells its assignees about it.
// Drafts (archived orders) are saved silently.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NoticeDispatcher
	policy     services.AuthorizationPolicy
	planner    services.NoticePlanner
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, dispatcher ports.NoticeDispatcher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAuthorizationPolicy(),
		planner:    services.NewNoticePlanner(),
	}
}

// Handle authorizes the caller, persists the order and dispatches the creation notices.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if err := h.policy.AuthorizeCreate(actor); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), actor.ID(), cmd.Draft(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatch(h.dispatcher, h.planner.ForCreation(o, actor), cmd.SuppressEmail())
	return o, nil
}
