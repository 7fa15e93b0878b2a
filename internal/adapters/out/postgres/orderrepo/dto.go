// Package orderrepo maps the order aggregate onto the orders, order_items and
// order_assignments tables.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the orders table. Items and assignees live in child tables
// and are written explicitly by the repository.
type OrderDTO struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	CreatorID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Title       string               `gorm:"type:varchar(255);not null;default:''"`
	Description string               `gorm:"type:text;not null"`
	City        string               `gorm:"type:varchar(64);not null;default:''"`
	Status      int                  `gorm:"type:smallint;not null;index"`
	Items       []OrderItemDTO       `gorm:"foreignKey:OrderID"`
	Assignments []OrderAssignmentDTO `gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time            `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt   time.Time            `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of order_items. Position keeps creation order stable.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"type:int;not null"`
	Status   int       `gorm:"type:smallint;not null;default:0"`
	Position int       `gorm:"type:int;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderAssignmentDTO links an order to one of its assignees.
type OrderAssignmentDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (OrderAssignmentDTO) TableName() string {
	return "order_assignments"
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  id,
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Status:   int(item.Status()),
			Position: i,
		})
	}

	assignments := make([]OrderAssignmentDTO, 0, len(o.AssigneeIDs()))
	for _, assignee := range o.AssigneeIDs() {
		assignments = append(assignments, OrderAssignmentDTO{OrderID: id, UserID: assignee.Bytes()})
	}

	return OrderDTO{
		ID:          id,
		CreatorID:   o.CreatorID().Bytes(),
		Title:       o.Title(),
		Description: o.Description(),
		City:        o.City().String(),
		Status:      int(o.Status()),
		Items:       items,
		Assignments: assignments,
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder.
// Items must already be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	creatorID, err := kernel.UUIDFromBytes(dto.CreatorID[:])
	if err != nil {
		return nil, err
	}
	city, err := kernel.NewCity(dto.City)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.RestoreItem(itemID, itemDTO.Name, itemDTO.Quantity, order.ItemStatus(itemDTO.Status))
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	assignees := make([]kernel.UUID, 0, len(dto.Assignments))
	for _, a := range dto.Assignments {
		userID, userErr := kernel.UUIDFromBytes(a.UserID[:])
		if userErr != nil {
			return nil, userErr
		}
		assignees = append(assignees, userID)
	}

	return order.RestoreOrder(order.State{
		ID:          id,
		CreatorID:   creatorID,
		Title:       dto.Title,
		Description: dto.Description,
		City:        city,
		Status:      order.Status(dto.Status),
		AssigneeIDs: assignees,
		Items:       items,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
