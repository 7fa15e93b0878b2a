package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

const defaultDescription = "New Order"

// Draft carries the caller-supplied fields of a new order.
// A zero Status means Pending.
type Draft struct {
	Title       string
	Description string
	City        kernel.City
	Status      Status
	Items       []ItemInput
	AssigneeIDs []kernel.UUID
}

// State is the full persisted shape of an order, used by RestoreOrder.
type State struct {
	ID          kernel.UUID
	CreatorID   kernel.UUID
	Title       string
	Description string
	City        kernel.City
	Status      Status
	AssigneeIDs []kernel.UUID
	Items       []Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order is the aggregate root of the fulfillment domain. It owns its items and is the
// subject of every change record.
//
// Order follows these invariants:
//   - The creator never changes after construction
//   - Assignees are deduplicated; their order carries no meaning
//   - Item names are unique within one order
//   - Status moves only along the transitions defined by Status
//
// The Order struct uses private fields; every mutation goes through ApplyPatch or EnterERP.
type Order struct {
	id          kernel.UUID
	creatorID   kernel.UUID
	title       string
	description string
	city        kernel.City
	status      Status
	assigneeIDs []kernel.UUID
	items       []Item
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// Mutation describes what ApplyPatch did. Callers use it to write change records
// and to decide which notifications to send.
type Mutation struct {
	Diff

	PreviousStatus    Status
	Status            Status
	PreviousAssignees []kernel.UUID
}

// WasAssignee reports whether id was assigned before the patch was applied.
func (m Mutation) WasAssignee(id kernel.UUID) bool {
	return kernel.ContainsUUID(m.PreviousAssignees, id)
}

// StatusChanged reports whether the patch moved the order to another status.
func (m Mutation) StatusChanged() bool {
	return m.PreviousStatus != m.Status
}

// WasSent reports whether the patch sent a draft (Archived -> Pending).
func (m Mutation) WasSent() bool {
	return m.PreviousStatus == Archived && m.Status == Pending
}

// NewOrder creates an order on behalf of creatorID.
//
// An empty description defaults to "Order with <n> items" when items are supplied,
// otherwise to "New Order". The initial status must be Archived or Pending.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), maker.ID(), order.Draft{
//	    Title: "Stationery",
//	    Items: []order.ItemInput{{Name: "book", Quantity: 1}},
//	}, time.Now())
func NewOrder(id, creatorID kernel.UUID, draft Draft, now time.Time) (*Order, error) {
	status := draft.Status
	if status == Unknown {
		status = Pending
	}

	description := draft.Description
	if description == "" {
		description = defaultDescription
		if len(draft.Items) > 0 {
			description = fmt.Sprintf("Order with %d items", len(draft.Items))
		}
	}

	items, err := buildItems(draft.Items)
	if err != nil {
		return nil, err
	}

	if err = status.ValidateInitial(); err != nil {
		return nil, err
	}

	return RestoreOrder(State{
		ID:          id,
		CreatorID:   creatorID,
		Title:       draft.Title,
		Description: description,
		City:        draft.City,
		Status:      status,
		AssigneeIDs: draft.AssigneeIDs,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// RestoreOrder rebuilds an order from its persisted state.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		title:         s.Title,
		description:   s.Description,
		city:          s.City,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCreatorID(s.CreatorID),
		o.setStatus(s.Status),
		o.setAssignees(s.AssigneeIDs),
		o.setItems(s.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CreatorID() kernel.UUID {
	return o.creatorID
}

func (o *Order) Title() string {
	return o.title
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) City() kernel.City {
	return o.city
}

func (o *Order) Status() Status {
	return o.status
}

// AssigneeIDs returns a copy of the current assignee set.
func (o *Order) AssigneeIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(o.assigneeIDs))
	copy(out, o.assigneeIDs)
	return out
}

// Items returns a copy of the items in creation order.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsCreator reports whether userID created the order.
func (o *Order) IsCreator(userID kernel.UUID) bool {
	return o.creatorID.IsEqual(userID)
}

// IsAssignee reports whether userID is currently in the assignee set.
func (o *Order) IsAssignee(userID kernel.UUID) bool {
	return kernel.ContainsUUID(o.assigneeIDs, userID)
}

// ApplyPatch diffs the patch against the order and, if the diff and the status
// transition are both valid, applies it. On error the order is left untouched.
//
// Status is compared but never diffed into a change: it only shows up in the returned
// Mutation as PreviousStatus/Status.
//
// Example:
//
//	m, err := o.ApplyPatch(patch, time.Now())
//	if err != nil {
//	    return err // nothing was applied
//	}
//	records, err := m.ChangeRecords(o.ID(), actor.ID, o.UpdatedAt())
func (o *Order) ApplyPatch(patch Patch, now time.Time) (Mutation, error) {
	diff, err := ComputeDiff(o, patch)
	if err != nil {
		return Mutation{}, err
	}

	next := o.status
	if patch.Status != nil {
		if next, err = o.status.TransitionTo(*patch.Status); err != nil {
			return Mutation{}, err
		}
	}

	var items []Item
	if patch.Items != nil {
		if items, err = buildItems(*patch.Items); err != nil {
			return Mutation{}, err
		}
	}

	m := Mutation{
		Diff:              diff,
		PreviousStatus:    o.status,
		Status:            next,
		PreviousAssignees: slices.Clone(o.assigneeIDs),
	}

	if patch.Title != nil {
		o.title = *patch.Title
	}
	if patch.Description != nil {
		o.description = *patch.Description
	}
	if patch.City != nil {
		o.city = *patch.City
	}
	if patch.Items != nil {
		o.items = items
	}
	if patch.AssigneeIDs != nil {
		o.assigneeIDs = kernel.UniqueUUIDs(*patch.AssigneeIDs)
	}
	o.status = next

	if !diff.IsEmpty() || m.StatusChanged() {
		o.updatedAt = now
	}

	return m, nil
}

// EnterERP hands a completed order over to the ERP.
// Repeating the call returns ErrAlreadyEnteredERP and changes nothing.
func (o *Order) EnterERP(now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.status.EnterERP()
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.creatorID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAssignees(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	o.assigneeIDs = kernel.UniqueUUIDs(ids)
	return nil
}

func (o *Order) setItems(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.name]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"items are invalid", fmt.Errorf("item %q is listed more than once", item.name))
		}
		seen[item.name] = struct{}{}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func buildItems(inputs []ItemInput) ([]Item, error) {
	if err := validateItemInputs(inputs); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(inputs))
	for _, in := range inputs {
		item, err := NewItem(in.Name, in.Quantity, in.Status)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
