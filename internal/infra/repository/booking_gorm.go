package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / reschedule (conflict-checked)
// --------------------------------------------------

func (r *BookingGormRepository) CreateWithFreeSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, b.SlotKey, ""); err != nil {
			return err
		}
		return tx.Create(b).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

func (r *BookingGormRepository) SaveWithFreeSlot(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, b.SlotKey, b.ID); err != nil {
			return err
		}
		return tx.Save(b).Error
	})

	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

// assertSlotFree locks the occupying rows for the slot so two concurrent
// writers serialize on the same key. Postgres forbids FOR UPDATE on an
// aggregate, so this selects ids rather than counting. The partial unique
// index on slot_key backstops the gap for rows this SELECT cannot see yet.
func assertSlotFree(tx *gorm.DB, slotKey, excludeID string) error {
	res := occupyingSlotQuery(tx, slotKey, excludeID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return nil
}

func occupyingSlotQuery(tx *gorm.DB, slotKey, excludeID string) *gorm.DB {
	q := tx.Model(&models.Booking{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("slot_key = ? AND status IN ?", slotKey, []string{
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		})
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var ids []string
	return q.Limit(1).Pluck("id", &ids)
}

// --------------------------------------------------
// Plain persistence
// --------------------------------------------------

func (r *BookingGormRepository) Save(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("slot_key DESC").
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) ListByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Booking, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{}).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
