package notificationrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormNotificationRepository implements ports.NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

func (r *GormNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	dto := notificationFromDomain(n)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}
	return notificationToDomain(dto)
}

// Update persists the read flag, the only mutable column.
func (r *GormNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", n.ID().Bytes()).
		Update("is_read", n.IsRead())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}
	return nil
}

// GormPushSubscriptionRepository implements ports.PushSubscriptionRepository using GORM.
type GormPushSubscriptionRepository struct {
	db *gorm.DB
}

func NewGormPushSubscriptionRepository(db *gorm.DB) *GormPushSubscriptionRepository {
	return &GormPushSubscriptionRepository{db: db}
}

// Save upserts on the endpoint: re-registering a browser moves it to the new user and keys.
func (r *GormPushSubscriptionRepository) Save(ctx context.Context, s notification.PushSubscription) error {
	dto := subscriptionFromDomain(s)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "endpoint"}},
			DoUpdates: clause.AssignmentColumns([]string{"user_id", "p256dh", "auth", "expires_at"}),
		}).
		Create(&dto).Error
}

func (r *GormPushSubscriptionRepository) ListFor(ctx context.Context, userID kernel.UUID) ([]notification.PushSubscription, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PushSubscriptionDTO
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()).Find(&dtos).Error; err != nil {
		return nil, err
	}

	subs := make([]notification.PushSubscription, 0, len(dtos))
	for _, dto := range dtos {
		s, err := subscriptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

func (r *GormPushSubscriptionRepository) Prune(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&PushSubscriptionDTO{}, "id = ?", id.Bytes()).Error
}

func (r *GormPushSubscriptionRepository) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&PushSubscriptionDTO{})
	return result.RowsAffected, result.Error
}
