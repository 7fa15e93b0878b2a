package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// BulkSendOrdersCommandHandler moves many drafts to pending in one transaction.
// Every order must be a draft the caller may mutate, otherwise nothing is sent.
type BulkSendOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher ports.NoticeDispatcher
	policy     services.AuthorizationPolicy
	planner    services.NoticePlanner
}

func NewBulkSendOrdersCommandHandler(uowFactory OrderUoWFactory, dispatcher ports.NoticeDispatcher) BulkSendOrdersCommandHandler {
	return BulkSendOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		policy:     services.NewAuthorizationPolicy(),
		planner:    services.NewNoticePlanner(),
	}
}

func (h *BulkSendOrdersCommandHandler) Handle(ctx context.Context, cmd BulkSendOrdersCommand) ([]*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		actor   = cmd.Actor()
		now     = time.Now().UTC()
		pending = order.Pending
		sent    = make([]*order.Order, 0, len(cmd.OrderIDs()))
		notices []notification.Notice
		digests = newDigestBuilder()
	)

	orderRepo := uow.OrderRepository()
	for _, id := range cmd.OrderIDs() {
		o, err := orderRepo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err = h.policy.AuthorizeMutate(actor, o); err != nil {
			return nil, err
		}
		if o.Status() != order.Archived {
			return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid",
				fmt.Errorf("order %s is %s, only archived drafts can be sent", o.ID(), o.Status()))
		}

		mutation, err := o.ApplyPatch(order.Patch{Status: &pending}, now)
		if err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}

		planned := h.planner.ForMutation(o, mutation, actor)
		for _, n := range planned {
			if n.Email == notification.EmailOrderCreated {
				digests.add(n.RecipientIDs, o.ID())
			}
		}
		notices = append(notices, planned...)
		sent = append(sent, o)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatch(h.dispatcher, notices, true)
	if d := digests.build(); len(d) > 0 {
		h.dispatcher.DispatchDigests(d...)
	}
	return sent, nil
}

// digestBuilder groups order ids per recipient, keeping first-seen order.
type digestBuilder struct {
	order  []kernel.UUID
	orders map[kernel.UUID][]kernel.UUID
}

func newDigestBuilder() *digestBuilder {
	return &digestBuilder{orders: make(map[kernel.UUID][]kernel.UUID)}
}

func (b *digestBuilder) add(recipients []kernel.UUID, orderID kernel.UUID) {
	for _, r := range recipients {
		ids, seen := b.orders[r]
		if !seen {
			b.order = append(b.order, r)
		}
		if !kernel.ContainsUUID(ids, orderID) {
			b.orders[r] = append(ids, orderID)
		}
	}
}

func (b *digestBuilder) build() []notification.Digest {
	out := make([]notification.Digest, 0, len(b.order))
	for _, r := range b.order {
		out = append(out, notification.Digest{RecipientID: r, OrderIDs: b.orders[r]})
	}
	return out
}
