package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetOrderQueryHandler loads an order through the repository so that the
// authorization policy sees the same aggregate the commands see.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
	users  ports.UserRepository
	policy services.AuthorizationPolicy
}

func NewGetOrderQueryHandler(orders ports.OrderRepository, users ports.UserRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, users: users, policy: services.NewAuthorizationPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}
	if err = h.policy.AuthorizeRead(query.Actor(), o); err != nil {
		return OrderDetails{}, err
	}

	names, err := usernames(ctx, h.users, append(o.AssigneeIDs(), o.CreatorID()))
	if err != nil {
		return OrderDetails{}, err
	}

	return OrderDetails{Order: o, Usernames: names}, nil
}

// GetOrderHistoryQueryHandler returns the full audit trail of a readable order.
type GetOrderHistoryQueryHandler struct {
	orders ports.OrderRepository
	audit  ports.AuditLogRepository
	users  ports.UserRepository
	policy services.AuthorizationPolicy
}

func NewGetOrderHistoryQueryHandler(
	orders ports.OrderRepository,
	audit ports.AuditLogRepository,
	users ports.UserRepository,
) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{
		orders: orders,
		audit:  audit,
		users:  users,
		policy: services.NewAuthorizationPolicy(),
	}
}

func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	if err = h.policy.AuthorizeRead(query.Actor(), o); err != nil {
		return nil, err
	}

	records, err := h.audit.ListFor(ctx, o.ID(), 0)
	if err != nil {
		return nil, err
	}

	return withActorNames(ctx, h.users, records)
}

// withActorNames pairs change records with the usernames of their authors.
func withActorNames(ctx context.Context, users ports.UserRepository, records []order.ChangeRecord) ([]HistoryEntry, error) {
	ids := make([]kernel.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ActorID())
	}

	names, err := usernames(ctx, users, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, HistoryEntry{Record: r, ActorName: names[r.ActorID()]})
	}
	return entries, nil
}

func usernames(ctx context.Context, users ports.UserRepository, ids []kernel.UUID) (map[kernel.UUID]string, error) {
	found, err := users.GetMany(ctx, kernel.UniqueUUIDs(ids))
	if err != nil {
		return nil, err
	}
	names := make(map[kernel.UUID]string, len(found))
	for _, u := range found {
		names[u.ID()] = u.Username()
	}
	return names, nil
}
