// Package auditrepo persists order change records in the order_logs table.
package auditrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ChangeRecordDTO is a row of order_logs. Rows are insert-only.
type ChangeRecordDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;index:idx_order_logs_order_created,priority:1"`
	PreviousValue string    `gorm:"type:text;not null"`
	NewValue      string    `gorm:"type:text;not null"`
	ActorID       uuid.UUID `gorm:"type:uuid;not null"`
	Position      int       `gorm:"type:int;not null"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false;index:idx_order_logs_order_created,priority:2"`
}

func (ChangeRecordDTO) TableName() string {
	return "order_logs"
}

func fromDomain(r order.ChangeRecord) ChangeRecordDTO {
	return ChangeRecordDTO{
		ID:            r.ID().Bytes(),
		OrderID:       r.OrderID().Bytes(),
		PreviousValue: r.PreviousValue(),
		NewValue:      r.NewValue(),
		ActorID:       r.ActorID().Bytes(),
		Position:      r.Position(),
		CreatedAt:     r.CreatedAt(),
	}
}

func toDomain(dto ChangeRecordDTO) (order.ChangeRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.ChangeRecord{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.ChangeRecord{}, err
	}
	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.ChangeRecord{}, err
	}

	return order.RestoreChangeRecord(id, orderID, actorID, dto.PreviousValue, dto.NewValue, dto.Position, dto.CreatedAt)
}
