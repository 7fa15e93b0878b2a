package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned for a zero-value Notification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Notification is an in-app feed entry of one recipient.
// The only change it accepts after creation is being marked as read by that recipient.
type Notification struct {
	id            kernel.UUID
	recipientID   kernel.UUID
	orderID       *kernel.UUID
	message       string
	category      Category
	isRead        bool
	createdAt     time.Time
	isConstructed bool
}

// NewNotification creates an unread entry. orderID is optional.
//
// Example:
//
//	n, err := notification.NewNotification(makerID, &orderID,
//	    "Order #42 details updated by sara", notification.CategoryInfo, time.Now())
func NewNotification(
	recipientID kernel.UUID,
	orderID *kernel.UUID,
	message string,
	category Category,
	now time.Time,
) (*Notification, error) {
	return RestoreNotification(kernel.NewUUID(), recipientID, orderID, message, category, false, now)
}

// RestoreNotification rebuilds an entry from persistence.
func RestoreNotification(
	id, recipientID kernel.UUID,
	orderID *kernel.UUID,
	message string,
	category Category,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	errList := []error{id.Validate(), recipientID.Validate(), category.Validate()}
	if orderID != nil {
		errList = append(errList, orderID.Validate())
	}
	if strings.TrimSpace(message) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		recipientID:   recipientID,
		orderID:       orderID,
		message:       message,
		category:      category,
		isRead:        isRead,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// MarkRead flags the entry as read. Only the recipient may do so; repeating it is harmless.
func (n *Notification) MarkRead(readerID kernel.UUID) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if !n.recipientID.IsEqual(readerID) {
		return errs.NewForbiddenErrorWithCause("mark notification as read",
			fmt.Errorf("notification %s belongs to another user", n.id))
	}
	n.isRead = true
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// OrderID returns nil for notifications unrelated to an order.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Category() Category {
	return n.category
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}
