package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/notification"
)

// ErrSubscriptionGone is returned by a PushSender when the endpoint no longer exists.
// The caller prunes the subscription and does not retry.
var ErrSubscriptionGone = errors.New("push subscription is gone")

// PushMessage is the payload shown by the browser.
type PushMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// PushSender delivers one message to one subscription.
type PushSender interface {
	Send(ctx context.Context, sub notification.PushSubscription, msg PushMessage) error
}

// Email is a rendered message ready for the mail relay.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer hands a rendered email to the mail relay.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// NoticeDispatcher accepts notices after a commit. Implementations must not block
// the caller on delivery.
type NoticeDispatcher interface {
	Dispatch(notices ...notification.Notice)
	DispatchDigests(digests ...notification.Digest)
}
