package logsink_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"fulfillment/internal/adapters/out/logsink"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinks_LogInsteadOfSending(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sub, err := notification.NewPushSubscription(kernel.NewUUID(), "https://push.example.com/x", "k", "a", nil)
	require.NoError(t, err)

	require.NoError(t, logsink.NewPushSender(logger).Send(context.Background(), sub, ports.PushMessage{Body: "hello"}))
	require.NoError(t, logsink.NewMailer(logger).Send(context.Background(), ports.Email{To: "a@example.com", Subject: "hi"}))

	assert.Contains(t, buf.String(), "component=LogPushSender")
	assert.Contains(t, buf.String(), "body=hello")
	assert.Contains(t, buf.String(), "to=a@example.com")
}
