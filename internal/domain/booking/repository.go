package booking

import (
	"context"

	"github.com/freshlane/carwash-scheduler/internal/models"
)

type Repository interface {
	// -------- Create / reschedule (conflict-checked) --------

	// CreateWithFreeSlot inserts the booking inside a transaction that
	// serializes on the slot's occupying rows; a taken slot yields the
	// slot_conflict business error.
	CreateWithFreeSlot(
		ctx context.Context,
		b *models.Booking,
	) error

	// SaveWithFreeSlot persists a reschedule, re-running the conflict
	// check against the new slot key while ignoring the booking itself.
	SaveWithFreeSlot(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Plain persistence --------

	Save(
		ctx context.Context,
		b *models.Booking,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	ListByIDs(
		ctx context.Context,
		ids []string,
	) ([]models.Booking, error)

	Delete(
		ctx context.Context,
		id string,
	) error
}
