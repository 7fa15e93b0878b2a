package userrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/activity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	if err := id.Validate(); err != nil {
		return user.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return user.User{}, err
	}
	return userToDomain(dto)
}

func (r *GormUserRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range kernel.UniqueUUIDs(ids) {
		raw = append(raw, id.Bytes())
	}

	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	users := make([]user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := userToDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// GormActivityLogRepository implements ports.ActivityLogRepository using GORM.
type GormActivityLogRepository struct {
	db *gorm.DB
}

func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

func (r *GormActivityLogRepository) Append(ctx context.Context, entry activity.Entry) error {
	dto := activityFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
