package booking

import (
	"context"

	"github.com/freshlane/carwash-scheduler/internal/models"
)

// CancelBooking is sugar over UpdateBooking with status=cancelled; the same
// ownership and transition rules apply.
type CancelBooking struct {
	update *UpdateBooking
}

func NewCancelBooking(update *UpdateBooking) *CancelBooking {
	return &CancelBooking{update: update}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
	callerID uint,
) (*models.Booking, error) {
	return uc.update.Execute(ctx, bookingID, callerID, Patch{
		"status": "cancelled",
	})
}
