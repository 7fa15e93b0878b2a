package notification

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// EmailKind selects the email template of a notice. EmailNone sends no email.
type EmailKind int

const (
	EmailNone EmailKind = iota
	EmailOrderCreated
	EmailUpdatedByCreator
	EmailUpdatedByAssignee
)

func (k EmailKind) String() string {
	switch k {
	case EmailOrderCreated:
		return "order-created"
	case EmailUpdatedByCreator:
		return "updated-by-creator"
	case EmailUpdatedByAssignee:
		return "updated-by-assignee"
	case EmailNone:
	}
	return "none"
}

// Notice is one message addressed to a set of recipients about one order.
// Every recipient gets an in-app entry and a push attempt; email depends on Email.
type Notice struct {
	RecipientIDs []kernel.UUID
	OrderID      kernel.UUID
	Message      string
	Category     Category
	Email        EmailKind
}

// WithoutEmail returns copies of notices with email delivery turned off,
// used when a batch operation sends a digest instead.
func WithoutEmail(notices []Notice) []Notice {
	out := make([]Notice, len(notices))
	for i, n := range notices {
		n.Email = EmailNone
		out[i] = n
	}
	return out
}

// Digest bundles several orders into one email per recipient.
type Digest struct {
	RecipientID kernel.UUID
	OrderIDs    []kernel.UUID
}
