package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Archived))
		assert.Equal(t, 2, int(order.Pending))
		assert.Equal(t, 3, int(order.InProgress))
		assert.Equal(t, 4, int(order.Completed))
		assert.Equal(t, 5, int(order.EnteredERP))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Archived, order.Pending, order.InProgress, order.Completed, order.EnteredERP} {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_StringAndParse(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Archived, "archived"},
		{order.Pending, "pending"},
		{order.InProgress, "in-progress"},
		{order.Completed, "completed"},
		{order.EnteredERP, "entered_erp"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())

			parsed, err := order.ParseStatus(tc.expected)
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		})
	}

	t.Run("should ignore case and spaces when parsing", func(t *testing.T) {
		parsed, err := order.ParseStatus("  In-Progress ")
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, parsed)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, raw := range []string{"", "Unknown", "done"} {
			_, err := order.ParseStatus(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatus_ValidateInitial(t *testing.T) {
	require.NoError(t, order.Archived.ValidateInitial())
	require.NoError(t, order.Pending.ValidateInitial())

	for _, status := range []order.Status{order.Unknown, order.InProgress, order.Completed, order.EnteredERP} {
		err := status.ValidateInitial()
		require.Error(t, err, status.String())
		assert.Contains(t, err.Error(), "is not a valid initial status")
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	testCases := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.Archived, order.Pending, true},
		{order.Pending, order.InProgress, true},
		{order.InProgress, order.Pending, true},
		{order.InProgress, order.Completed, true},
		{order.Pending, order.Pending, true},
		{order.Completed, order.Completed, true},
		{order.EnteredERP, order.EnteredERP, true},

		{order.Archived, order.InProgress, false},
		{order.Archived, order.Completed, false},
		{order.Archived, order.EnteredERP, false},
		{order.Pending, order.Archived, false},
		{order.Pending, order.Completed, false},
		{order.Completed, order.EnteredERP, false},
		{order.Completed, order.Pending, false},
		{order.EnteredERP, order.Completed, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), fmt.Sprintf("cannot move from %s to %s", tc.from, tc.to))
			assert.Equal(t, order.Unknown, next)
		})
	}

	t.Run("should reject an invalid target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_EnterERP(t *testing.T) {
	t.Run("should enter a completed order", func(t *testing.T) {
		next, err := order.Completed.EnterERP()
		require.NoError(t, err)
		assert.Equal(t, order.EnteredERP, next)
	})

	t.Run("should report a conflict when repeated", func(t *testing.T) {
		_, err := order.EnteredERP.EnterERP()
		require.ErrorIs(t, err, order.ErrAlreadyEnteredERP)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject every other status", func(t *testing.T) {
		for _, status := range []order.Status{order.Archived, order.Pending, order.InProgress} {
			_, err := status.EnterERP()
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, status.String())
		}
	})
}

func TestStatus_IsVisibleToAssignees(t *testing.T) {
	assert.False(t, order.Archived.IsVisibleToAssignees())
	assert.True(t, order.Pending.IsVisibleToAssignees())
	assert.True(t, order.Completed.IsVisibleToAssignees())
}
