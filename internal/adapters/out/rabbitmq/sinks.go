package rabbitmq

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

type pushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

type pushEnvelope struct {
	SubscriptionID string            `json:"subscriptionId"`
	Endpoint       string            `json:"endpoint"`
	Keys           pushKeys          `json:"keys"`
	Message        ports.PushMessage `json:"message"`
}

// PushSender publishes one web-push request per subscription.
// Gone endpoints are discovered by the relay, so Send never returns ports.ErrSubscriptionGone.
type PushSender struct {
	publisher *Publisher
}

func NewPushSender(publisher *Publisher) *PushSender {
	return &PushSender{publisher: publisher}
}

func (s *PushSender) Send(ctx context.Context, sub notification.PushSubscription, msg ports.PushMessage) error {
	return s.publisher.Publish(ctx, RoutingKeyPush, pushEnvelope{
		SubscriptionID: sub.ID().String(),
		Endpoint:       sub.Endpoint(),
		Keys:           pushKeys{P256dh: sub.P256dh(), Auth: sub.Auth()},
		Message:        msg,
	})
}

type mailEnvelope struct {
	From string `json:"from"`
	ports.Email
}

// Mailer publishes rendered emails for the SMTP relay.
type Mailer struct {
	publisher *Publisher
	from      string
}

func NewMailer(publisher *Publisher, from string) *Mailer {
	return &Mailer{publisher: publisher, from: from}
}

func (m *Mailer) Send(ctx context.Context, email ports.Email) error {
	return m.publisher.Publish(ctx, RoutingKeyEmail, mailEnvelope{From: m.from, Email: email})
}
