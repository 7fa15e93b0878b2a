package notifications_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockPushSubscriptionRepository struct {
	mock.Mock
}

func (m *MockPushSubscriptionRepository) Save(ctx context.Context, s notification.PushSubscription) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockPushSubscriptionRepository) ListFor(ctx context.Context, userID kernel.UUID) ([]notification.PushSubscription, error) {
	args := m.Called(ctx, userID)
	subs, _ := args.Get(0).([]notification.PushSubscription)
	return subs, args.Error(1)
}

func (m *MockPushSubscriptionRepository) Prune(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPushSubscriptionRepository) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]user.User, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Append(ctx context.Context, records ...order.ChangeRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *MockAuditLogRepository) ListFor(ctx context.Context, orderID kernel.UUID, limit int) ([]order.ChangeRecord, error) {
	args := m.Called(ctx, orderID, limit)
	records, _ := args.Get(0).([]order.ChangeRecord)
	return records, args.Error(1)
}

func (m *MockAuditLogRepository) DeleteAllFor(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, sub notification.PushSubscription, msg ports.PushMessage) error {
	return m.Called(ctx, sub, msg).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, email ports.Email) error {
	return m.Called(ctx, email).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
