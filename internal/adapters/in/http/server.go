// Package http exposes the order pipeline over a JSON API served by echo.
package http

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handler is a use case that produces a result.
type Handler[C any, R any] interface {
	Handle(ctx context.Context, c C) (R, error)
}

// CommandHandler is a use case that only succeeds or fails.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, c C) error
}

// Handlers holds every use case the API serves.
type Handlers struct {
	CreateOrder      Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder      Handler[commands.UpdateOrderCommand, commands.UpdateOrderResult]
	DeleteOrder      CommandHandler[commands.DeleteOrderCommand]
	AdminDeleteOrder CommandHandler[commands.AdminDeleteOrderCommand]
	EnterERP         Handler[commands.EnterERPCommand, *order.Order]
	BulkSend         Handler[commands.BulkSendOrdersCommand, []*order.Order]
	MarkRead         CommandHandler[commands.MarkNotificationReadCommand]
	RegisterPush     CommandHandler[commands.RegisterPushSubscriptionCommand]

	ListOrders        Handler[queries.ListOrdersQuery, []queries.OrderSummary]
	GetOrder          Handler[queries.GetOrderQuery, queries.OrderDetails]
	OrderHistory      Handler[queries.GetOrderHistoryQuery, []queries.HistoryEntry]
	ListNotifications Handler[queries.ListNotificationsQuery, []queries.NotificationView]
	ItemSuggestions   Handler[queries.GetItemSuggestionsQuery, []string]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// Register mounts the API under /api behind the identity middleware.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api", Identity())

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/bulk-send", s.BulkSendOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/erp", s.EnterERP)
	api.GET("/orders/:id/history", s.GetOrderHistory)

	api.DELETE("/admin/orders/:id", s.AdminDeleteOrder)

	api.GET("/notifications", s.ListNotifications)
	api.PUT("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/push/subscriptions", s.RegisterPushSubscription)

	api.GET("/items/suggestions", s.ItemSuggestions)
}
