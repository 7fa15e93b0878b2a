// Package logsink provides push and email sinks that only log, used when no
// message broker is configured.
package logsink

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

type PushSender struct {
	logger *slog.Logger
}

func NewPushSender(logger *slog.Logger) *PushSender {
	return &PushSender{logger: logger.With("component", "LogPushSender")}
}

func (s *PushSender) Send(ctx context.Context, sub notification.PushSubscription, msg ports.PushMessage) error {
	s.logger.InfoContext(ctx, "push message",
		"subscription_id", sub.ID().String(),
		"user_id", sub.UserID().String(),
		"title", msg.Title,
		"body", msg.Body)
	return nil
}

type Mailer struct {
	logger *slog.Logger
}

func NewMailer(logger *slog.Logger) *Mailer {
	return &Mailer{logger: logger.With("component", "LogMailer")}
}

func (m *Mailer) Send(ctx context.Context, email ports.Email) error {
	m.logger.InfoContext(ctx, "email", "to", email.To, "subject", email.Subject, "bytes", len(email.HTML))
	return nil
}
