package queries

import (
	"context"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler runs the role-scoped order listing.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AuthorizationPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewAuthorizationPolicy()}
}

// Handle applies the caller's listing scope, then the optional status filter.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scope, err := h.policy.ListingScope(query.Actor())
	if err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if scope.CreatorID != nil {
		where = append(where, "o.creator_id = ?")
		args = append(args, scope.CreatorID.Bytes())
	}
	if scope.AssigneeID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM order_assignments a WHERE a.order_id = o.id AND a.user_id = ?)")
		args = append(args, scope.AssigneeID.Bytes())
	}
	if scope.ExcludeArchived {
		where = append(where, "o.status <> ?")
		args = append(args, int(order.Archived))
	}
	if s := query.Status(); s != nil {
		where = append(where, "o.status = ?")
		args = append(args, int(*s))
	}

	sql := `
		SELECT
			o.id,
			o.creator_id,
			COALESCE(u.username, ''),
			o.title,
			o.description,
			o.city,
			o.status,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id),
			COALESCE((SELECT string_agg(a.user_id::text, ',') FROM order_assignments a WHERE a.order_id = o.id), ''),
			o.created_at,
			o.updated_at
		FROM orders o
		LEFT JOIN users u ON u.id = o.creator_id`
	if len(where) > 0 {
		sql += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	sql += "\n\t\tORDER BY o.created_at DESC, o.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary           OrderSummary
			id, creatorID     uuid.UUID
			status, itemCount int
			assignees         string
		)

		err = rows.Scan(
			&id,
			&creatorID,
			&summary.CreatorName,
			&summary.Title,
			&summary.Description,
			&summary.City,
			&status,
			&itemCount,
			&assignees,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.CreatorID, err = kernel.UUIDFromBytes(creatorID[:]); err != nil {
			return nil, err
		}
		if summary.AssigneeIDs, err = parseUUIDList(assignees); err != nil {
			return nil, err
		}
		summary.Status = order.Status(status)
		summary.ItemCount = itemCount

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// parseUUIDList reads the comma-separated output of string_agg.
func parseUUIDList(s string) ([]kernel.UUID, error) {
	if s == "" {
		return []kernel.UUID{}, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]kernel.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := kernel.UUIDFromString(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
