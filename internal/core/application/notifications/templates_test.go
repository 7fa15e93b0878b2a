package notifications_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/notifications"
	"fulfillment/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() notifications.OrderView {
	return notifications.OrderView{
		Title:     "Stationery",
		City:      "Nablus",
		Status:    "pending",
		Items:     []notifications.ItemView{{Name: "book", Quantity: 3}},
		Assignees: []string{"taker1", "taker2"},
	}
}

func TestRenderer_RenderNotice(t *testing.T) {
	renderer, err := notifications.NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name    string
		kind    notification.EmailKind
		subject string
		heading string
	}{
		{"created", notification.EmailOrderCreated, "New Order Assigned: Stationery", "New Order Assigned"},
		{"updated by creator", notification.EmailUpdatedByCreator, "Order Updated: Stationery", "Order Updated"},
		{"updated by assignee", notification.EmailUpdatedByAssignee, "Taker Updated Your Order: Stationery", "Order Updated by Taker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body, err := renderer.RenderNotice(tt.kind, notifications.NoticeEmail{
				RecipientName: "taker1",
				Message:       "Order details updated by maker1",
				Order:         sampleOrder(),
				Changes: []notifications.ChangeView{
					{At: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), Author: "maker1", Text: "Updated book: Qty 1 -> 3"},
				},
			})

			require.NoError(t, err)
			assert.Equal(t, tt.subject, subject)
			assert.Contains(t, body, tt.heading)
			assert.Contains(t, body, "Hello <strong>taker1</strong>")
			assert.Contains(t, body, "book (Qty: 3)")
			assert.Contains(t, body, "taker1, taker2")
			assert.Contains(t, body, "No note provided")
		})
	}
}

func TestRenderer_RenderNotice_UpdateListsChanges(t *testing.T) {
	renderer, err := notifications.NewRenderer()
	require.NoError(t, err)

	_, body, err := renderer.RenderNotice(notification.EmailUpdatedByAssignee, notifications.NoticeEmail{
		Order: sampleOrder(),
		Changes: []notifications.ChangeView{
			{At: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), Text: "Added: eraser (Qty: 1)"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Recent Changes")
	assert.Contains(t, body, "Added: eraser (Qty: 1)")
	assert.Contains(t, body, "01 Mar 2026 10:30 UTC - System")
}

func TestRenderer_RenderNotice_EscapesUserInput(t *testing.T) {
	renderer, err := notifications.NewRenderer()
	require.NoError(t, err)

	view := sampleOrder()
	view.Title = "<script>alert(1)</script>"

	_, body, err := renderer.RenderNotice(notification.EmailOrderCreated, notifications.NoticeEmail{Order: view})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRenderer_RenderNotice_EmailNone(t *testing.T) {
	renderer, err := notifications.NewRenderer()
	require.NoError(t, err)

	_, _, err = renderer.RenderNotice(notification.EmailNone, notifications.NoticeEmail{})

	require.Error(t, err)
}

func TestRenderer_RenderDigest(t *testing.T) {
	renderer, err := notifications.NewRenderer()
	require.NoError(t, err)

	second := sampleOrder()
	second.Title = ""

	subject, body, err := renderer.RenderDigest(notifications.DigestEmail{
		RecipientName: "taker1",
		Orders:        []notifications.OrderView{sampleOrder(), second},
	})

	require.NoError(t, err)
	assert.Equal(t, "2 New Orders Assigned to You", subject)
	assert.Contains(t, body, "Order 1: Stationery")
	assert.Contains(t, body, "Order 2: Untitled Order")
}
