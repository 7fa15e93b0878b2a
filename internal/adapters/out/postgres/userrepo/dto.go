// Package userrepo reads user profiles and appends administrative activity entries.
package userrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/activity"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserDTO is a row of the users table, owned by the account service.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role     string    `gorm:"type:varchar(16);not null"`
	Email    string    `gorm:"type:varchar(255);not null;default:''"`
}

func (UserDTO) TableName() string {
	return "users"
}

// ActivityLogDTO is a row of activity_logs; Details is a JSON column.
type ActivityLogDTO struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Action     string            `gorm:"type:varchar(64);not null"`
	EntityType string            `gorm:"type:varchar(64);not null"`
	EntityID   uuid.UUID         `gorm:"type:uuid;not null"`
	Details    datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time         `gorm:"not null;autoCreateTime:false"`
}

func (ActivityLogDTO) TableName() string {
	return "activity_logs"
}

func userToDomain(dto UserDTO) (user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return user.User{}, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return user.User{}, err
	}
	return user.RestoreUser(id, dto.Username, role, dto.Email)
}

func activityFromDomain(e activity.Entry) ActivityLogDTO {
	return ActivityLogDTO{
		ID:         e.ID().Bytes(),
		ActorID:    e.ActorID().Bytes(),
		Action:     e.Action(),
		EntityType: e.EntityType(),
		EntityID:   e.EntityID().Bytes(),
		Details:    datatypes.JSONMap(e.Details()),
		CreatedAt:  e.CreatedAt(),
	}
}
