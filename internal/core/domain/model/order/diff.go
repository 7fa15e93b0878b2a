package order

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
)

const (
	noneValue = "None"

	assigneesPreviousValue = "Takers Updated"
	assigneesNewValue      = "Updated Assigned Takers"
)

// Change is one entry of a diff, before it is attributed to an actor and persisted.
type Change struct {
	Previous string
	New      string
}

// Diff is the ordered outcome of comparing an order with a patch.
// Changes are emitted in this order: title, description, city, items, assignees.
type Diff struct {
	Changes []Change

	// AddedAssignees holds the ids present in the patch but not on the order.
	// It is filled only when the assignee set actually changed.
	AddedAssignees []kernel.UUID
}

// IsEmpty reports whether the patch changed nothing that is audited.
func (d Diff) IsEmpty() bool {
	return len(d.Changes) == 0
}

// ComputeDiff compares current with patch. It does not modify either of them.
//
// Only the fields the patch supplies are compared. Items are keyed by name: a changed quantity
// yields "Updated <name>: Qty <old> -> <new>", a new name yields "Added: <name> (Qty: <n>)",
// and names that disappeared yield "Removed: <name>" after all updates and additions.
// A differing assignee set yields a single "Updated Assigned Takers" change.
//
// Example:
//
//	qty := []order.ItemInput{{Name: "book", Quantity: 3}, {Name: "eraser", Quantity: 1}}
//	diff, err := order.ComputeDiff(o, order.Patch{Items: &qty})
//	// diff.Changes[0].New == "Updated book: Qty 1 -> 3"
//	// diff.Changes[1].New == "Added: eraser (Qty: 1)"
func ComputeDiff(current *Order, patch Patch) (Diff, error) {
	if err := current.Validate(); err != nil {
		return Diff{}, err
	}
	if err := patch.Validate(); err != nil {
		return Diff{}, err
	}

	var d Diff

	if patch.Title != nil {
		d.appendScalar("Title", current.title, *patch.Title)
	}
	if patch.Description != nil {
		d.appendScalar("Desc", current.description, *patch.Description)
	}
	if patch.City != nil {
		d.appendScalar("City", current.city.String(), patch.City.String())
	}
	if patch.Items != nil {
		d.appendItems(current.items, *patch.Items)
	}
	if patch.AssigneeIDs != nil && !kernel.SameUUIDSet(current.assigneeIDs, *patch.AssigneeIDs) {
		d.Changes = append(d.Changes, Change{Previous: assigneesPreviousValue, New: assigneesNewValue})
		d.AddedAssignees = kernel.SubtractUUIDs(*patch.AssigneeIDs, current.assigneeIDs)
	}

	return d, nil
}

func (d *Diff) appendScalar(label, oldValue, newValue string) {
	if oldValue == newValue {
		return
	}
	previous := orNone(oldValue)
	d.Changes = append(d.Changes, Change{
		Previous: previous,
		New:      fmt.Sprintf("%s: %s -> %s", label, previous, orNone(newValue)),
	})
}

func (d *Diff) appendItems(oldItems []Item, newItems []ItemInput) {
	oldQty := make(map[string]int, len(oldItems))
	for _, item := range oldItems {
		oldQty[item.name] = item.quantity
	}

	kept := make(map[string]struct{}, len(newItems))
	for _, in := range newItems {
		name := strings.TrimSpace(in.Name)
		kept[name] = struct{}{}

		qty, existed := oldQty[name]
		switch {
		case !existed:
			d.Changes = append(d.Changes, Change{
				Previous: noneValue,
				New:      fmt.Sprintf("Added: %s (Qty: %d)", name, in.Quantity),
			})
		case qty != in.Quantity:
			d.Changes = append(d.Changes, Change{
				Previous: strconv.Itoa(qty),
				New:      fmt.Sprintf("Updated %s: Qty %d -> %d", name, qty, in.Quantity),
			})
		}
	}

	for _, item := range oldItems {
		if _, ok := kept[item.name]; ok {
			continue
		}
		d.Changes = append(d.Changes, Change{
			Previous: fmt.Sprintf("%s (%d)", item.name, item.quantity),
			New:      "Removed: " + item.name,
		})
	}
}

func orNone(s string) string {
	if s == "" {
		return noneValue
	}
	return s
}
