package commands_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/activity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Append(ctx context.Context, records ...order.ChangeRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockAuditLogRepository) ListFor(ctx context.Context, orderID kernel.UUID, limit int) ([]order.ChangeRecord, error) {
	args := m.Called(ctx, orderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.ChangeRecord), args.Error(1)
}

func (m *MockAuditLogRepository) DeleteAllFor(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockActivityLogRepository struct{ mock.Mock }

func (m *MockActivityLogRepository) Append(ctx context.Context, entry activity.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockPushSubscriptionRepository struct{ mock.Mock }

func (m *MockPushSubscriptionRepository) Save(ctx context.Context, s notification.PushSubscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockPushSubscriptionRepository) ListFor(ctx context.Context, userID kernel.UUID) ([]notification.PushSubscription, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]notification.PushSubscription), args.Error(1)
}

func (m *MockPushSubscriptionRepository) Prune(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPushSubscriptionRepository) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockOrderUoW hands out fixed repositories; the transaction calls are mocked.
type MockOrderUoW struct {
	MockTx
	orders *MockOrderRepository
	audit  *MockAuditLogRepository
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockOrderUoW) AuditLogRepository() ports.AuditLogRepository {
	return m.audit
}

type MockAdminUoW struct {
	*MockOrderUoW
	activities *MockActivityLogRepository
}

func (m *MockAdminUoW) ActivityLogRepository() ports.ActivityLogRepository {
	return m.activities
}

type MockNotificationUoW struct {
	MockTx
	notifications *MockNotificationRepository
	subscriptions *MockPushSubscriptionRepository
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	return m.notifications
}

func (m *MockNotificationUoW) PushSubscriptionRepository() ports.PushSubscriptionRepository {
	return m.subscriptions
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockAdminUoWFactory struct{ mock.Mock }

func (m *MockAdminUoWFactory) Create() commands.AdminUoW {
	return m.Called().Get(0).(commands.AdminUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	return m.Called().Get(0).(commands.NotificationUoW)
}

// MockNoticeDispatcher records what it was handed.
type MockNoticeDispatcher struct {
	mock.Mock
	notices []notification.Notice
	digests []notification.Digest
}

func (m *MockNoticeDispatcher) Dispatch(notices ...notification.Notice) {
	m.Called(notices)
	m.notices = append(m.notices, notices...)
}

func (m *MockNoticeDispatcher) DispatchDigests(digests ...notification.Digest) {
	m.Called(digests)
	m.digests = append(m.digests, digests...)
}

func newOrderUoW() *MockOrderUoW {
	return &MockOrderUoW{
		orders: new(MockOrderRepository),
		audit:  new(MockAuditLogRepository),
	}
}

func newOrderUoWFactory(uow *MockOrderUoW) *MockOrderUoWFactory {
	f := new(MockOrderUoWFactory)
	f.On("Create").Return(uow).Once()
	return f
}

type actors struct {
	maker     user.Actor
	taker     user.Actor
	stranger  user.Actor
	admin     user.Actor
	accounter user.Actor
}

func newActors(t *testing.T) actors {
	t.Helper()
	newActor := func(name string, role user.Role) user.Actor {
		a, err := user.NewActor(kernel.NewUUID(), name, role)
		require.NoError(t, err)
		return a
	}
	return actors{
		maker:     newActor("maker1", user.RoleMaker),
		taker:     newActor("taker1", user.RoleTaker),
		stranger:  newActor("taker2", user.RoleTaker),
		admin:     newActor("admin", user.RoleAdmin),
		accounter: newActor("accounter", user.RoleAccounter),
	}
}

// newStoredOrder builds an order as the repository would return it.
func newStoredOrder(t *testing.T, creator user.Actor, draft order.Draft) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), creator.ID(), draft, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func ptr[T any](v T) *T {
	return &v
}
