package services

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/user"
)

// NoticePlanner decides who hears about an order event and what they are told.
// It never delivers anything.
//
// Business rules:
//   - The actor is never a recipient
//   - Assignees hear nothing about an archived draft
//   - Detail notices are planned only when the mutation produced at least one change
//   - An admin who is neither creator nor assignee triggers no detail or status notice
//
// Example usage:
//
//	planner := services.NewNoticePlanner()
//	notices := planner.ForMutation(o, mutation, actor)
//	dispatcher.Dispatch(notices...)
type NoticePlanner struct{}

func NewNoticePlanner() NoticePlanner {
	return NoticePlanner{}
}

// ForCreation plans the notices for a freshly created order: every assignee of a
// non-draft order is told about the new assignment.
func (p NoticePlanner) ForCreation(o *order.Order, actor user.Actor) []notification.Notice {
	if o.Validate() != nil || !o.Status().IsVisibleToAssignees() {
		return nil
	}
	return compact([]notification.Notice{p.newAssignment(o, o.AssigneeIDs(), actor)})
}

// ForMutation plans the notices for an applied patch. o must already reflect the patch.
// An actor counts as an assignee if they were one before the patch, so removing
// themselves still notifies the creator.
//
// Planned notices, in order:
//   - draft sent (Archived -> Pending): "New Order Assigned" to every assignee
//   - details changed by the creator: "was updated by Maker" to every assignee
//   - details changed by an assignee: "details updated by <name>" to the creator
//   - assignees added to a visible order: "You have been assigned" to the added ones,
//     unless the draft was sent in the same patch
//   - status changed by an assignee who is not the creator: "status updated" to the creator
func (p NoticePlanner) ForMutation(o *order.Order, m order.Mutation, actor user.Actor) []notification.Notice {
	if o.Validate() != nil || actor.Validate() != nil {
		return nil
	}

	var (
		notices    []notification.Notice
		id         = o.ID()
		isCreator  = o.IsCreator(actor.ID())
		isAssignee = m.WasAssignee(actor.ID()) || o.IsAssignee(actor.ID())
		visible    = o.Status().IsVisibleToAssignees()
	)

	if m.WasSent() {
		notices = append(notices, p.newAssignment(o, o.AssigneeIDs(), actor))
	}

	if !m.IsEmpty() {
		switch {
		case isCreator && visible:
			notices = append(notices, notification.Notice{
				RecipientIDs: o.AssigneeIDs(),
				OrderID:      id,
				Message:      fmt.Sprintf("Order #%s was updated by Maker", id),
				Category:     notification.CategoryInfo,
				Email:        notification.EmailUpdatedByCreator,
			})
		case isAssignee && !isCreator:
			notices = append(notices, notification.Notice{
				RecipientIDs: []kernel.UUID{o.CreatorID()},
				OrderID:      id,
				Message:      fmt.Sprintf("Order #%s details updated by %s", id, actor.DisplayName()),
				Category:     notification.CategoryInfo,
				Email:        notification.EmailUpdatedByAssignee,
			})
		}
	}

	if len(m.AddedAssignees) > 0 && visible && !m.WasSent() {
		notices = append(notices, notification.Notice{
			RecipientIDs: m.AddedAssignees,
			OrderID:      id,
			Message:      fmt.Sprintf("You have been assigned to order #%s: %s", id, titleOr(o, "Untitled")),
			Category:     notification.CategoryAlert,
			Email:        notification.EmailOrderCreated,
		})
	}

	if m.StatusChanged() && isAssignee && !isCreator {
		notices = append(notices, notification.Notice{
			RecipientIDs: []kernel.UUID{o.CreatorID()},
			OrderID:      id,
			Message:      fmt.Sprintf("Order #%s status updated to '%s' by %s", id, m.Status, actor.DisplayName()),
			Category:     notification.CategoryInfo,
		})
	}

	return compact(excludeActor(notices, actor.ID()))
}

// ForERPEntry tells the creator that an accounter or admin handed the order to the ERP.
func (NoticePlanner) ForERPEntry(o *order.Order, actor user.Actor) []notification.Notice {
	if o.Validate() != nil {
		return nil
	}
	return compact(excludeActor([]notification.Notice{{
		RecipientIDs: []kernel.UUID{o.CreatorID()},
		OrderID:      o.ID(),
		Message:      fmt.Sprintf("Order #%s was entered into ERP", o.ID()),
		Category:     notification.CategorySuccess,
	}}, actor.ID()))
}

func (NoticePlanner) newAssignment(o *order.Order, recipients []kernel.UUID, actor user.Actor) notification.Notice {
	return notification.Notice{
		RecipientIDs: kernel.SubtractUUIDs(recipients, []kernel.UUID{actor.ID()}),
		OrderID:      o.ID(),
		Message:      "New Order Assigned: " + titleOr(o, "Untitled Order"),
		Category:     notification.CategoryAlert,
		Email:        notification.EmailOrderCreated,
	}
}

func excludeActor(notices []notification.Notice, actorID kernel.UUID) []notification.Notice {
	for i := range notices {
		notices[i].RecipientIDs = kernel.SubtractUUIDs(notices[i].RecipientIDs, []kernel.UUID{actorID})
	}
	return notices
}

// compact drops notices left without recipients.
func compact(notices []notification.Notice) []notification.Notice {
	out := make([]notification.Notice, 0, len(notices))
	for _, n := range notices {
		if len(n.RecipientIDs) > 0 {
			out = append(out, n)
		}
	}
	return out
}

func titleOr(o *order.Order, fallback string) string {
	if o.Title() == "" {
		return fallback
	}
	return o.Title()
}
