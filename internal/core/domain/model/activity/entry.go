package activity

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	// ActionDeleteOrder is journaled when an admin deletes an order they do not own.
	ActionDeleteOrder = "DELETE_ORDER"

	EntityOrder = "Order"
)

// Entry is one line of the administrative activity journal.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	action     string
	entityType string
	entityID   kernel.UUID
	details    map[string]any
	createdAt  time.Time
}

// NewEntry records that actorID performed action on the given entity.
// details is stored as JSON and may be nil.
//
// Example:
//
//	entry, err := activity.NewEntry(admin.ID(), activity.ActionDeleteOrder, activity.EntityOrder, o.ID(),
//	    map[string]any{"title": o.Title()}, time.Now())
func NewEntry(
	actorID kernel.UUID,
	action, entityType string,
	entityID kernel.UUID,
	details map[string]any,
	now time.Time,
) (Entry, error) {
	errList := []error{actorID.Validate(), entityID.Validate()}
	if strings.TrimSpace(action) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("action"))
	}
	if strings.TrimSpace(entityType) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("entity type"))
	}
	if err := errors.Join(errList...); err != nil {
		return Entry{}, err
	}

	copied := make(map[string]any, len(details))
	for k, v := range details {
		copied[k] = v
	}

	return Entry{
		id:         kernel.NewUUID(),
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		details:    copied,
		createdAt:  now,
	}, nil
}

func (e Entry) ID() kernel.UUID {
	return e.id
}

func (e Entry) ActorID() kernel.UUID {
	return e.actorID
}

func (e Entry) Action() string {
	return e.action
}

func (e Entry) EntityType() string {
	return e.entityType
}

func (e Entry) EntityID() kernel.UUID {
	return e.entityID
}

// Details returns a copy of the free-form payload.
func (e Entry) Details() map[string]any {
	out := make(map[string]any, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}
