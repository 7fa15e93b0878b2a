package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestOrder(t *testing.T, draft order.Draft) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), draft, time.Now())
	require.NoError(t, err)
	return o
}

func newValues(d order.Diff) []string {
	out := make([]string, 0, len(d.Changes))
	for _, c := range d.Changes {
		out = append(out, c.New)
	}
	return out
}

func TestComputeDiff_Scalars(t *testing.T) {
	o := newTestOrder(t, order.Draft{Title: "Old", Description: "Desc", City: kernel.MustCity("Nablus")})

	t.Run("should emit nothing for an empty patch", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{})

		require.NoError(t, err)
		assert.True(t, d.IsEmpty())
	})

	t.Run("should emit nothing when supplied values are unchanged", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{
			Title:       ptr("Old"),
			Description: ptr("Desc"),
			City:        ptr(kernel.MustCity("nablus")),
		})

		require.NoError(t, err)
		assert.True(t, d.IsEmpty())
	})

	t.Run("should emit title, description and city in that order", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{
			City:        ptr(kernel.MustCity("Jenin")),
			Description: ptr("New desc"),
			Title:       ptr("New"),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Title: Old -> New",
			"Desc: Desc -> New desc",
			"City: Nablus -> Jenin",
		}, newValues(d))
		assert.Equal(t, "Old", d.Changes[0].Previous)
		assert.Equal(t, "Desc", d.Changes[1].Previous)
		assert.Equal(t, "Nablus", d.Changes[2].Previous)
	})

	t.Run("should render missing values as None", func(t *testing.T) {
		untitled := newTestOrder(t, order.Draft{})

		d, err := order.ComputeDiff(untitled, order.Patch{Title: ptr("First"), City: ptr(kernel.MustCity("Tubas"))})

		require.NoError(t, err)
		assert.Equal(t, []string{"Title: None -> First", "City: None -> Tubas"}, newValues(d))
		assert.Equal(t, "None", d.Changes[0].Previous)
	})

	t.Run("should render a cleared field as None", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{Title: ptr(""), City: ptr(kernel.City{})})

		require.NoError(t, err)
		assert.Equal(t, []string{"Title: Old -> None", "City: Nablus -> None"}, newValues(d))
	})
}

func TestComputeDiff_Items(t *testing.T) {
	o := newTestOrder(t, order.Draft{Items: []order.ItemInput{
		{Name: "book", Quantity: 1},
		{Name: "pen", Quantity: 2},
		{Name: "ruler", Quantity: 1},
	}})

	t.Run("should emit nothing for the same items in another order", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{
			{Name: "ruler", Quantity: 1},
			{Name: "book", Quantity: 1},
			{Name: "pen", Quantity: 2},
		}})

		require.NoError(t, err)
		assert.True(t, d.IsEmpty())
	})

	t.Run("should emit a single update for a quantity change", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{
			{Name: "book", Quantity: 5},
			{Name: "pen", Quantity: 2},
			{Name: "ruler", Quantity: 1},
		}})

		require.NoError(t, err)
		require.Len(t, d.Changes, 1)
		assert.Equal(t, "Updated book: Qty 1 -> 5", d.Changes[0].New)
		assert.Equal(t, "1", d.Changes[0].Previous)
	})

	t.Run("should treat a rename as one removal and one addition", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{
			{Name: "notebook", Quantity: 1},
			{Name: "pen", Quantity: 2},
			{Name: "ruler", Quantity: 1},
		}})

		require.NoError(t, err)
		assert.Equal(t, []string{"Added: notebook (Qty: 1)", "Removed: book"}, newValues(d))
		assert.Equal(t, "None", d.Changes[0].Previous)
		assert.Equal(t, "book (1)", d.Changes[1].Previous)
	})

	t.Run("should emit updates and additions in new-list order before removals in old-list order", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{
			{Name: "eraser", Quantity: 4},
			{Name: "pen", Quantity: 3},
		}})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Added: eraser (Qty: 4)",
			"Updated pen: Qty 2 -> 3",
			"Removed: book",
			"Removed: ruler",
		}, newValues(d))
	})

	t.Run("should remove every item for an empty list", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{}})

		require.NoError(t, err)
		assert.Equal(t, []string{"Removed: book", "Removed: pen", "Removed: ruler"}, newValues(d))
	})

	t.Run("should reject duplicate names", func(t *testing.T) {
		_, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{
			{Name: "pen", Quantity: 1},
			{Name: "pen", Quantity: 2},
		}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `item "pen" is listed more than once`)
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		_, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{{Name: "pen", Quantity: 0}}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should reject items without a name", func(t *testing.T) {
		_, err := order.ComputeDiff(o, order.Patch{Items: &[]order.ItemInput{{Name: "  ", Quantity: 1}}})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestComputeDiff_Assignees(t *testing.T) {
	a, b, c := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	o := newTestOrder(t, order.Draft{AssigneeIDs: []kernel.UUID{a, b}})

	t.Run("should ignore a reordered set", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{AssigneeIDs: &[]kernel.UUID{b, a}})

		require.NoError(t, err)
		assert.True(t, d.IsEmpty())
		assert.Empty(t, d.AddedAssignees)
	})

	t.Run("should emit one generic change and report added ids", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{AssigneeIDs: &[]kernel.UUID{b, c}})

		require.NoError(t, err)
		require.Len(t, d.Changes, 1)
		assert.Equal(t, "Updated Assigned Takers", d.Changes[0].New)
		assert.Equal(t, "Takers Updated", d.Changes[0].Previous)
		assert.Equal(t, []kernel.UUID{c}, d.AddedAssignees)
	})

	t.Run("should report no added ids when assignees were only removed", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{AssigneeIDs: &[]kernel.UUID{}})

		require.NoError(t, err)
		require.Len(t, d.Changes, 1)
		assert.Empty(t, d.AddedAssignees)
	})

	t.Run("should place the assignee change after item changes", func(t *testing.T) {
		d, err := order.ComputeDiff(o, order.Patch{
			AssigneeIDs: &[]kernel.UUID{a},
			Items:       &[]order.ItemInput{{Name: "pen", Quantity: 1}},
			Title:       ptr("T"),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Title: None -> T", "Added: pen (Qty: 1)", "Updated Assigned Takers"}, newValues(d))
	})
}

func TestComputeDiff_RejectsUnconstructedOrder(t *testing.T) {
	_, err := order.ComputeDiff(&order.Order{}, order.Patch{Title: ptr("x")})

	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestDiff_ChangeRecords(t *testing.T) {
	orderID, actorID := kernel.NewUUID(), kernel.NewUUID()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	d := order.Diff{Changes: []order.Change{
		{Previous: "1", New: "Updated book: Qty 1 -> 3"},
		{Previous: "None", New: "Added: eraser (Qty: 1)"},
	}}

	records, err := d.ChangeRecords(orderID, actorID, at)

	require.NoError(t, err)
	require.Len(t, records, 2)
	for i, r := range records {
		require.NoError(t, r.Validate())
		assert.Equal(t, i, r.Position())
		assert.True(t, r.OrderID().IsEqual(orderID))
		assert.True(t, r.ActorID().IsEqual(actorID))
		assert.Equal(t, at, r.CreatedAt())
	}
	assert.Equal(t, "Updated book: Qty 1 -> 3", records[0].NewValue())
	assert.Equal(t, "None", records[1].PreviousValue())
	assert.False(t, records[0].ID().IsEqual(records[1].ID()))
}
