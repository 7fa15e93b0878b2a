package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrChangeRecordIsNotConstructed is returned for a zero-value ChangeRecord.
var ErrChangeRecordIsNotConstructed = errors.New("ChangeRecord must be created via NewChangeRecord or RestoreChangeRecord")

// ChangeRecord is one immutable audit entry of an order.
// Records written by one mutation share actor and timestamp and are ordered by position.
type ChangeRecord struct {
	id            kernel.UUID
	orderID       kernel.UUID
	previousValue string
	newValue      string
	actorID       kernel.UUID
	createdAt     time.Time
	position      int
	isConstructed bool
}

// NewChangeRecord attributes a Change to the actor that made it.
func NewChangeRecord(orderID, actorID kernel.UUID, change Change, position int, at time.Time) (ChangeRecord, error) {
	return RestoreChangeRecord(kernel.NewUUID(), orderID, actorID, change.Previous, change.New, position, at)
}

// RestoreChangeRecord rebuilds a record read from the audit log store.
func RestoreChangeRecord(
	id, orderID, actorID kernel.UUID,
	previousValue, newValue string,
	position int,
	createdAt time.Time,
) (ChangeRecord, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), actorID.Validate()); err != nil {
		return ChangeRecord{}, err
	}
	if newValue == "" {
		return ChangeRecord{}, errs.NewValueIsRequiredError("change record value")
	}
	if position < 0 {
		return ChangeRecord{}, errs.NewValueIsOutOfRangeError("position", position, 0, "unbounded")
	}

	return ChangeRecord{
		id:            id,
		orderID:       orderID,
		previousValue: previousValue,
		newValue:      newValue,
		actorID:       actorID,
		createdAt:     createdAt,
		position:      position,
		isConstructed: true,
	}, nil
}

// ChangeRecords attributes every change of the diff to actorID at the given commit time.
func (d Diff) ChangeRecords(orderID, actorID kernel.UUID, at time.Time) ([]ChangeRecord, error) {
	records := make([]ChangeRecord, 0, len(d.Changes))
	for i, change := range d.Changes {
		record, err := NewChangeRecord(orderID, actorID, change, i, at)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r ChangeRecord) Validate() error {
	if !r.isConstructed {
		return ErrChangeRecordIsNotConstructed
	}
	return nil
}

func (r ChangeRecord) ID() kernel.UUID { return r.id }
func (r ChangeRecord) OrderID() kernel.UUID { return r.orderID }
func (r ChangeRecord) PreviousValue() string { return r.previousValue }
func (r ChangeRecord) NewValue() string { return r.newValue }
func (r ChangeRecord) ActorID() kernel.UUID { return r.actorID }
func (r ChangeRecord) CreatedAt() time.Time { return r.createdAt }
func (r ChangeRecord) Position() int { return r.position }
