package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/activity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_CreatorDeletes(t *testing.T) {
	ctx := t.Context()
	a := newActors(t)
	o := newStoredOrder(t, a.maker, order.Draft{Title: "Stationery"})
	cmd, err := commands.NewDeleteOrderCommand(a.maker, o.ID())
	require.NoError(t, err)

	uow := newOrderUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.audit.On("DeleteAllFor", ctx, o.ID()).Return(nil).Once(),
		uow.orders.On("Delete", ctx, o.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(newOrderUoWFactory(uow))
	require.NoError(t, h.Handle(ctx, cmd))

	uow.AssertExpectations(t)
	uow.orders.AssertExpectations(t)
	uow.audit.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_OnlyCreator(t *testing.T) {
	a := newActors(t)
	o := newStoredOrder(t, a.maker, order.Draft{AssigneeIDs: []kernel.UUID{a.taker.ID()}})

	for name, actor := range map[string]user.Actor{
		"assignee": a.taker,
		"admin":    a.admin,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewDeleteOrderCommand(actor, o.ID())
			require.NoError(t, err)

			uow := newOrderUoW()
			uow.On("Begin", ctx).Return(nil).Once()
			uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()

			h := commands.NewDeleteOrderCommandHandler(newOrderUoWFactory(uow))
			err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrForbidden)
			uow.orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			uow.audit.AssertNotCalled(t, "DeleteAllFor", mock.Anything, mock.Anything)
		})
	}
}

func TestAdminDeleteOrderCommandHandler_JournalsDeletion(t *testing.T) {
	ctx := t.Context()
	a := newActors(t)
	o := newStoredOrder(t, a.maker, order.Draft{Title: "Stationery"})
	cmd, err := commands.NewAdminDeleteOrderCommand(a.admin, o.ID())
	require.NoError(t, err)

	uow := &MockAdminUoW{MockOrderUoW: newOrderUoW(), activities: new(MockActivityLogRepository)}
	var journaled activity.Entry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.audit.On("DeleteAllFor", ctx, o.ID()).Return(nil).Once(),
		uow.orders.On("Delete", ctx, o.ID()).Return(nil).Once(),
		uow.activities.On("Append", ctx, mock.AnythingOfType("activity.Entry")).Run(func(args mock.Arguments) {
			journaled = args.Get(1).(activity.Entry)
		}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockAdminUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdminDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, a.admin.ID(), journaled.ActorID())
	assert.Equal(t, activity.ActionDeleteOrder, journaled.Action())
	assert.Equal(t, activity.EntityOrder, journaled.EntityType())
	assert.Equal(t, o.ID(), journaled.EntityID())
	assert.Equal(t, "Stationery", journaled.Details()["title"])
	uow.AssertExpectations(t)
	uow.activities.AssertExpectations(t)
}

func TestAdminDeleteOrderCommandHandler_RequiresAdmin(t *testing.T) {
	a := newActors(t)
	cmd, err := commands.NewAdminDeleteOrderCommand(a.accounter, kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockAdminUoWFactory)
	h := commands.NewAdminDeleteOrderCommandHandler(factory)

	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}
