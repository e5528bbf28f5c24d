package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/freshlane/carwash-scheduler/internal/audit"
	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(repo domain.Repository, auditor *audit.Dispatcher) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: auditor}
}

// Execute hard-deletes a booking after the same ownership gate Update uses.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID string,
	callerID uint,
) error {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return err
	}

	if b.UserID != callerID {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := uc.repo.Delete(ctx, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: bookingID,
	})

	return nil
}
