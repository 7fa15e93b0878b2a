package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/logsink"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/adapters/out/rabbitmq"
	"fulfillment/internal/core/application/notifications"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	publisher  *rabbitmq.Publisher
	dispatcher *notifications.AsyncDispatcher
}

// NewCompositionRoot wires the notification pipeline. With RABBITMQ_URL set, push and
// email go to the broker; otherwise they are only logged.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	sinks, err := c.createSinks()
	if err != nil {
		return nil, err
	}

	renderer, err := notifications.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	fanout, err := notifications.NewFanout(notifications.Stores{
		Inbox:         notificationrepo.NewGormNotificationRepository(gormDB),
		Subscriptions: notificationrepo.NewGormPushSubscriptionRepository(gormDB),
		Users:         userrepo.NewGormUserRepository(gormDB),
		Orders:        orderrepo.NewGormOrderRepository(gormDB),
		Audit:         auditrepo.NewGormAuditLogRepository(gormDB),
	}, sinks, renderer, cfg.NotifyWorkers, logger)
	if err != nil {
		return nil, errors.Join(err, c.closePublisher())
	}

	c.dispatcher = notifications.NewAsyncDispatcher(fanout, cfg.NotifyWorkers, cfg.NotifyQueueSize, logger)
	return c, nil
}

func (c *CompositionRoot) createSinks() (notifications.Sinks, error) {
	if c.cfg.RabbitMQURL == "" {
		c.logger.Warn("RABBITMQ_URL is not set, push and email are logged only")
		return notifications.Sinks{
			Push:   logsink.NewPushSender(c.logger),
			Mailer: logsink.NewMailer(c.logger),
		}, nil
	}

	publisher, err := rabbitmq.Dial(c.cfg.RabbitMQURL)
	if err != nil {
		return notifications.Sinks{}, err
	}
	c.publisher = publisher

	return notifications.Sinks{
		Push:   rabbitmq.NewPushSender(publisher),
		Mailer: rabbitmq.NewMailer(publisher, c.cfg.MailFrom),
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.dispatcher)
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAdminDeleteOrderCommandHandler() *commands.AdminDeleteOrderCommandHandler {
	var f commands.AdminUoWFactory = FuncAdminUoWFactory(func() commands.AdminUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAdminDeleteOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateEnterERPCommandHandler() *commands.EnterERPCommandHandler {
	h := commands.NewEnterERPCommandHandler(c.orderUoWFactory(), c.dispatcher)
	return &h
}

func (c *CompositionRoot) CreateBulkSendOrdersCommandHandler() *commands.BulkSendOrdersCommandHandler {
	h := commands.NewBulkSendOrdersCommandHandler(c.orderUoWFactory(), c.dispatcher)
	return &h
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() *commands.MarkNotificationReadCommandHandler {
	h := commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateRegisterPushSubscriptionCommandHandler() *commands.RegisterPushSubscriptionCommandHandler {
	h := commands.NewRegisterPushSubscriptionCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreatePruneExpiredSubscriptionsCommandHandler() *commands.PruneExpiredSubscriptionsCommandHandler {
	h := commands.NewPruneExpiredSubscriptionsCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		userrepo.NewGormUserRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		auditrepo.NewGormAuditLogRepository(c.gormDB),
		userrepo.NewGormUserRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemSuggestionsQueryHandler() queries.GetItemSuggestionsQueryHandler {
	return queries.NewGetItemSuggestionsQueryHandler(c.gormDB)
}

// HTTPHandlers collects every use case served by the API.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		UpdateOrder:      c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:      c.CreateDeleteOrderCommandHandler(),
		AdminDeleteOrder: c.CreateAdminDeleteOrderCommandHandler(),
		EnterERP:         c.CreateEnterERPCommandHandler(),
		BulkSend:         c.CreateBulkSendOrdersCommandHandler(),
		MarkRead:         c.CreateMarkNotificationReadCommandHandler(),
		RegisterPush:     c.CreateRegisterPushSubscriptionCommandHandler(),

		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		OrderHistory:      c.CreateGetOrderHistoryQueryHandler(),
		ListNotifications: c.CreateListNotificationsQueryHandler(),
		ItemSuggestions:   c.CreateGetItemSuggestionsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	prune := jobs.NewSubscriptionPruneJob(c.CreatePruneExpiredSubscriptionsCommandHandler(), c.cfg.PruneSchedule, c.logger)
	return jobs.NewJobManager(c.logger, prune)
}

// Close drains queued notifications and then releases the broker connection.
func (c *CompositionRoot) Close(ctx context.Context) error {
	return errors.Join(c.dispatcher.Close(ctx), c.closePublisher())
}

func (c *CompositionRoot) closePublisher() error {
	if c.publisher == nil {
		return nil
	}
	return c.publisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAdminUoWFactory func() commands.AdminUoW

func (f FuncAdminUoWFactory) Create() commands.AdminUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
