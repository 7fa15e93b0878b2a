package auditrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements ports.AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Append inserts all records in a single statement. Appending nothing is a no-op.
func (r *GormAuditLogRepository) Append(ctx context.Context, records ...order.ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}

	dtos := make([]ChangeRecordDTO, 0, len(records))
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(record))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListFor returns the newest records first. Records of one mutation share created_at,
// so position breaks the tie in reverse emission order.
func (r *GormAuditLogRepository) ListFor(ctx context.Context, orderID kernel.UUID, limit int) ([]order.ChangeRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at DESC").
		Order("position DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []ChangeRecordDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]order.ChangeRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *GormAuditLogRepository) DeleteAllFor(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Delete(&ChangeRecordDTO{}).Error
}
