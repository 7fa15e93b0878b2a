package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Handlers wrap these errors with context before they reach the HTTP layer,
// which classifies them with errors.Is.
func TestErrors_SurviveWrapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "missing order",
			err:      errs.NewObjectNotFoundError("orderID", "7f1c"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 7f1c",
		},
		{
			name:     "missing order with store cause",
			err:      errs.NewObjectNotFoundErrorWithCause("orderID", "7f1c", errors.New("record not found")),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: orderID, ID is: 7f1c (cause: record not found)",
		},
		{
			name:     "unknown city",
			err:      errs.NewValueIsInvalidErrorWithCause("city", errors.New("Tashkent is not served")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: city (cause: Tashkent is not served)",
		},
		{
			name:     "item quantity",
			err:      errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is quantity, min value is 1, max value is 1000",
		},
		{
			name:     "missing item name",
			err:      errs.NewValueIsRequiredError("item name"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: item name",
		},
		{
			name:     "stranger edits an order",
			err:      errs.NewForbiddenError("edit order"),
			sentinel: errs.ErrForbidden,
			message:  "forbidden: edit order",
		},
		{
			name:     "second ERP entry",
			err:      errs.NewConflictErrorWithCause("status", errors.New("already entered into ERP")),
			sentinel: errs.ErrConflict,
			message:  "conflict: status (cause: already entered into ERP)",
		},
		{
			name:     "push endpoint down",
			err:      errs.NewNotificationDeliveryError("push", "sara", errors.New("503")),
			sentinel: errs.ErrNotificationDelivery,
			message:  "notification delivery failed: channel is: push, recipient is: sara (cause: 503)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())

			wrapped := fmt.Errorf("update order: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.sentinel)
			for _, other := range []error{errs.ErrObjectNotFound, errs.ErrForbidden, errs.ErrConflict} {
				if other != tc.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestForbiddenError_KeepsAction(t *testing.T) {
	err := fmt.Errorf("delete order: %w",
		errs.NewForbiddenErrorWithCause("delete order", errors.New("only the creator may delete")))

	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "delete order", forbidden.Action)
	assert.Equal(t, "forbidden: delete order (cause: only the creator may delete)", forbidden.Error())
}

func TestValueIsOutOfRangeError_FlattensMultilineValues(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("title", "Stationery\nfor Q3", 1, 10)

	assert.Equal(t, "Stationery\nfor Q3", err.Value)
	assert.Contains(t, err.Error(), "Stationery for Q3")
	assert.NotContains(t, err.Error(), "\n")
}

func TestNotificationDeliveryError_ExposesChannel(t *testing.T) {
	err := errs.NewNotificationDeliveryError("email", "maker1", errors.New("relay down"))

	var delivery *errs.NotificationDeliveryError
	require.ErrorAs(t, fmt.Errorf("fanout: %w", err), &delivery)
	assert.Equal(t, "email", delivery.Channel)
	assert.Equal(t, "maker1", delivery.RecipientID)
	assert.EqualError(t, delivery.Cause, "relay down")
}
