package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

type ItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status,omitempty"`
}

type CreateOrderRequest struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	City          string        `json:"city"`
	Status        string        `json:"status"`
	Items         []ItemRequest `json:"items"`
	AssigneeIDs   []string      `json:"assigneeIds"`
	SuppressEmail bool          `json:"suppressEmail"`
}

// UpdateOrderRequest is a partial update: absent fields stay nil and are left alone.
type UpdateOrderRequest struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	City          *string        `json:"city"`
	Status        *string        `json:"status"`
	Items         *[]ItemRequest `json:"items"`
	AssigneeIDs   *[]string      `json:"assigneeIds"`
	SuppressEmail bool           `json:"suppressEmail"`
}

type BulkSendRequest struct {
	OrderIDs []string `json:"orderIds"`
}

type PushSubscriptionRequest struct {
	Endpoint       string     `json:"endpoint"`
	ExpirationTime *time.Time `json:"expirationTime"`
	Keys           struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

type ItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}

type OrderResponse struct {
	ID          string           `json:"id"`
	Creator     UserRef          `json:"creator"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	City        string           `json:"city"`
	Status      string           `json:"status"`
	Items       []ItemResponse   `json:"items"`
	Assignees   []UserRef        `json:"assignees"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	History     []ChangeResponse `json:"history,omitempty"`
}

type ChangeResponse struct {
	ID            string    `json:"id"`
	PreviousValue string    `json:"previousValue"`
	NewValue      string    `json:"newValue"`
	ActorID       string    `json:"actorId"`
	ActorName     string    `json:"actorName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type OrderSummaryResponse struct {
	ID          string    `json:"id"`
	Creator     UserRef   `json:"creator"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"itemCount"`
	AssigneeIDs []string  `json:"assigneeIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	OrderID   *string   `json:"orderId"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r ItemRequest) toInput() (order.ItemInput, error) {
	status, err := order.ParseItemStatus(r.Status)
	if err != nil {
		return order.ItemInput{}, err
	}
	return order.ItemInput{Name: r.Name, Quantity: r.Quantity, Status: status}, nil
}

func toItemInputs(items []ItemRequest) ([]order.ItemInput, error) {
	inputs := make([]order.ItemInput, 0, len(items))
	for _, item := range items {
		input, err := item.toInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

// toDraft accepts only "pending" and "archived" as the initial status; empty means pending.
func (r CreateOrderRequest) toDraft() (order.Draft, error) {
	city, err := kernel.NewCity(r.City)
	if err != nil {
		return order.Draft{}, err
	}

	var status order.Status
	if r.Status != "" {
		if status, err = order.ParseStatus(r.Status); err != nil {
			return order.Draft{}, err
		}
		if err = status.ValidateInitial(); err != nil {
			return order.Draft{}, err
		}
	}

	items, err := toItemInputs(r.Items)
	if err != nil {
		return order.Draft{}, err
	}

	assignees, err := parseUUIDs("assigneeIds", r.AssigneeIDs)
	if err != nil {
		return order.Draft{}, err
	}

	return order.Draft{
		Title:       r.Title,
		Description: r.Description,
		City:        city,
		Status:      status,
		Items:       items,
		AssigneeIDs: assignees,
	}, nil
}

func (r UpdateOrderRequest) toPatch() (order.Patch, error) {
	patch := order.Patch{Title: r.Title, Description: r.Description}

	if r.City != nil {
		city, err := kernel.NewCity(*r.City)
		if err != nil {
			return order.Patch{}, err
		}
		patch.City = &city
	}
	if r.Status != nil {
		status, err := order.ParseStatus(*r.Status)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Status = &status
	}
	if r.Items != nil {
		items, err := toItemInputs(*r.Items)
		if err != nil {
			return order.Patch{}, err
		}
		patch.Items = &items
	}
	if r.AssigneeIDs != nil {
		ids, err := parseUUIDs("assigneeIds", *r.AssigneeIDs)
		if err != nil {
			return order.Patch{}, err
		}
		patch.AssigneeIDs = &ids
	}

	return patch, nil
}

func newOrderResponse(o *order.Order, names map[kernel.UUID]string) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID().String(),
		Creator:     UserRef{ID: o.CreatorID().String(), Username: names[o.CreatorID()]},
		Title:       o.Title(),
		Description: o.Description(),
		City:        o.City().String(),
		Status:      o.Status().String(),
		Items:       make([]ItemResponse, 0, len(o.Items())),
		Assignees:   make([]UserRef, 0, len(o.AssigneeIDs())),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
	for _, item := range o.Items() {
		resp.Items = append(resp.Items, ItemResponse{
			ID:       item.ID().String(),
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Status:   item.Status().String(),
		})
	}
	for _, id := range o.AssigneeIDs() {
		resp.Assignees = append(resp.Assignees, UserRef{ID: id.String(), Username: names[id]})
	}
	return resp
}

func newChangeResponse(r order.ChangeRecord, actorName string) ChangeResponse {
	return ChangeResponse{
		ID:            r.ID().String(),
		PreviousValue: r.PreviousValue(),
		NewValue:      r.NewValue(),
		ActorID:       r.ActorID().String(),
		ActorName:     actorName,
		CreatedAt:     r.CreatedAt(),
	}
}

func newOrderSummaryResponse(s queries.OrderSummary) OrderSummaryResponse {
	resp := OrderSummaryResponse{
		ID:          s.ID.String(),
		Creator:     UserRef{ID: s.CreatorID.String(), Username: s.CreatorName},
		Title:       s.Title,
		Description: s.Description,
		City:        s.City,
		Status:      s.Status.String(),
		ItemCount:   s.ItemCount,
		AssigneeIDs: make([]string, 0, len(s.AssigneeIDs)),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	for _, id := range s.AssigneeIDs {
		resp.AssigneeIDs = append(resp.AssigneeIDs, id.String())
	}
	return resp
}

func newNotificationResponse(v queries.NotificationView) NotificationResponse {
	resp := NotificationResponse{
		ID:        v.ID.String(),
		Message:   v.Message,
		Category:  v.Category.String(),
		IsRead:    v.IsRead,
		CreatedAt: v.CreatedAt,
	}
	if v.OrderID != nil {
		id := v.OrderID.String()
		resp.OrderID = &id
	}
	return resp
}
