// Package notificationrepo persists in-app notifications and push subscriptions.
package notificationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is a row of the notifications table.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient_created,priority:1"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Message     string     `gorm:"type:text;not null"`
	Category    string     `gorm:"type:varchar(16);not null"`
	IsRead      bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false;index:idx_notifications_recipient_created,priority:2"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// PushSubscriptionDTO is a row of push_subscriptions. Endpoints are unique.
type PushSubscriptionDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Endpoint  string     `gorm:"type:text;not null;uniqueIndex"`
	P256dh    string     `gorm:"type:text;not null"`
	Auth      string     `gorm:"type:text;not null"`
	ExpiresAt *time.Time `gorm:"index"`
}

func (PushSubscriptionDTO) TableName() string {
	return "push_subscriptions"
}

func notificationFromDomain(n *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := n.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:          n.ID().Bytes(),
		RecipientID: n.RecipientID().Bytes(),
		OrderID:     orderID,
		Message:     n.Message(),
		Category:    n.Category().String(),
		IsRead:      n.IsRead(),
		CreatedAt:   n.CreatedAt(),
	}
}

func notificationToDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	category, err := notification.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, recipientID, orderID, dto.Message, category, dto.IsRead, dto.CreatedAt)
}

func subscriptionFromDomain(s notification.PushSubscription) PushSubscriptionDTO {
	return PushSubscriptionDTO{
		ID:        s.ID().Bytes(),
		UserID:    s.UserID().Bytes(),
		Endpoint:  s.Endpoint(),
		P256dh:    s.P256dh(),
		Auth:      s.Auth(),
		ExpiresAt: s.ExpiresAt(),
	}
}

func subscriptionToDomain(dto PushSubscriptionDTO) (notification.PushSubscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return notification.PushSubscription{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return notification.PushSubscription{}, err
	}
	return notification.RestorePushSubscription(id, userID, dto.Endpoint, dto.P256dh, dto.Auth, dto.ExpiresAt)
}
