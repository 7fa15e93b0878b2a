package commands_test

import (
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPruneExpiredSubscriptionsCommand_RequiresNow(t *testing.T) {
	_, err := commands.NewPruneExpiredSubscriptionsCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPruneExpiredSubscriptionsCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cmd, err := commands.NewPruneExpiredSubscriptionsCommand(now)
	require.NoError(t, err)

	uow, factory := newNotificationUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.subscriptions.On("PruneExpired", ctx, now).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPruneExpiredSubscriptionsCommandHandler(factory)
	pruned, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), pruned)
	uow.AssertExpectations(t)
	uow.subscriptions.AssertExpectations(t)
}

func TestPruneExpiredSubscriptionsCommandHandler_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPruneExpiredSubscriptionsCommand(time.Now())
	require.NoError(t, err)
	dbErr := errors.New("db down")

	uow, factory := newNotificationUoW()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.subscriptions.On("PruneExpired", ctx, cmd.Now()).Return(int64(0), dbErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewPruneExpiredSubscriptionsCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPruneExpiredSubscriptionsCommandHandler_NotConstructed(t *testing.T) {
	h := commands.NewPruneExpiredSubscriptionsCommandHandler(new(MockNotificationUoWFactory))

	_, err := h.Handle(t.Context(), commands.PruneExpiredSubscriptionsCommand{})

	require.ErrorIs(t, err, commands.ErrPruneExpiredSubscriptionsCommandIsNotConstructed)
}
