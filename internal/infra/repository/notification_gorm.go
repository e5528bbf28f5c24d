package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/notification"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

type NotificationGormRepository struct {
	db *gorm.DB
}

func NewNotificationGormRepository(db *gorm.DB) *NotificationGormRepository {
	return &NotificationGormRepository{db: db}
}

func (r *NotificationGormRepository) Create(
	ctx context.Context,
	n *models.Notification,
) error {

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
	limit int,
	skip int,
	unreadOnly bool,
) ([]models.Notification, error) {

	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var ns []models.Notification
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

func (r *NotificationGormRepository) Counts(
	ctx context.Context,
	userID uint,
) (int64, int64, error) {

	var total, unread int64

	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return 0, 0, err
	}

	return total, unread, nil
}

func (r *NotificationGormRepository) GetByIDForUser(
	ctx context.Context,
	id string,
	userID uint,
) (*models.Notification, error) {

	var n models.Notification
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationGormRepository) MarkRead(
	ctx context.Context,
	id string,
	userID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) MarkAllRead(
	ctx context.Context,
	userID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) Delete(
	ctx context.Context,
	id string,
	userID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

func (r *NotificationGormRepository) DeleteAll(
	ctx context.Context,
	userID uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Notification{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*NotificationGormRepository)(nil)
