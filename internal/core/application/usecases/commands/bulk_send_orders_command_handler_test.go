package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulkSendOrdersCommandHandler_SendsDraftsWithOneDigestPerAssignee(t *testing.T) {
	ctx := t.Context()
	a := newActors(t)
	first := newStoredOrder(t, a.maker, order.Draft{
		Title:       "Stationery",
		Status:      order.Archived,
		AssigneeIDs: []kernel.UUID{a.taker.ID()},
	})
	second := newStoredOrder(t, a.maker, order.Draft{
		Title:       "Cleaning",
		Status:      order.Archived,
		AssigneeIDs: []kernel.UUID{a.taker.ID(), a.stranger.ID()},
	})
	cmd, err := commands.NewBulkSendOrdersCommand(a.maker, []kernel.UUID{first.ID(), second.ID(), first.ID()})
	require.NoError(t, err)

	uow := newOrderUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("Get", ctx, first.ID()).Return(first, nil).Once(),
		uow.orders.On("Update", ctx, first).Return(nil).Once(),
		uow.orders.On("Get", ctx, second.ID()).Return(second, nil).Once(),
		uow.orders.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	dispatcher := new(MockNoticeDispatcher)
	dispatcher.On("Dispatch", mock.Anything).Once()
	dispatcher.On("DispatchDigests", mock.Anything).Once()

	h := commands.NewBulkSendOrdersCommandHandler(newOrderUoWFactory(uow), dispatcher)
	sent, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, sent, 2)
	assert.Equal(t, order.Pending, first.Status())
	assert.Equal(t, order.Pending, second.Status())

	require.Len(t, dispatcher.notices, 2)
	for _, n := range dispatcher.notices {
		assert.Equal(t, notification.EmailNone, n.Email, "per-order email is replaced by the digest")
	}

	require.Len(t, dispatcher.digests, 2)
	assert.Equal(t, a.taker.ID(), dispatcher.digests[0].RecipientID)
	assert.Equal(t, []kernel.UUID{first.ID(), second.ID()}, dispatcher.digests[0].OrderIDs)
	assert.Equal(t, a.stranger.ID(), dispatcher.digests[1].RecipientID)
	assert.Equal(t, []kernel.UUID{second.ID()}, dispatcher.digests[1].OrderIDs)

	uow.AssertExpectations(t)
	uow.orders.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestBulkSendOrdersCommandHandler_RejectsNonDraft(t *testing.T) {
	ctx := t.Context()
	a := newActors(t)
	draft := newStoredOrder(t, a.maker, order.Draft{Status: order.Archived})
	live := newStoredOrder(t, a.maker, order.Draft{})
	cmd, err := commands.NewBulkSendOrdersCommand(a.maker, []kernel.UUID{draft.ID(), live.ID()})
	require.NoError(t, err)

	uow := newOrderUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.orders.On("Get", ctx, draft.ID()).Return(draft, nil).Once()
	uow.orders.On("Update", ctx, draft).Return(nil).Once()
	uow.orders.On("Get", ctx, live.ID()).Return(live, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	dispatcher := new(MockNoticeDispatcher)

	h := commands.NewBulkSendOrdersCommandHandler(newOrderUoWFactory(uow), dispatcher)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	dispatcher.AssertNotCalled(t, "DispatchDigests", mock.Anything)
}

func TestBulkSendOrdersCommandHandler_ForeignOrderIsForbidden(t *testing.T) {
	ctx := t.Context()
	a := newActors(t)
	other := newActors(t).maker
	foreign := newStoredOrder(t, other, order.Draft{Status: order.Archived})
	cmd, err := commands.NewBulkSendOrdersCommand(a.maker, []kernel.UUID{foreign.ID()})
	require.NoError(t, err)

	uow := newOrderUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.orders.On("Get", ctx, foreign.ID()).Return(foreign, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewBulkSendOrdersCommandHandler(newOrderUoWFactory(uow), new(MockNoticeDispatcher))
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Archived, foreign.Status())
}

func TestNewBulkSendOrdersCommand_RequiresOrders(t *testing.T) {
	a := newActors(t)
	_, err := commands.NewBulkSendOrdersCommand(a.maker, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
