package booking

import (
	"time"

	"github.com/freshlane/carwash-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus validates the transition and mutates the booking, stamping
// CompletedAt / CancelledAt. CompletedAt is written exactly once: replaying
// a "completed" update leaves the original stamp untouched.
func ApplyStatus(b *models.Booking, to Status, now time.Time) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)

	switch to {
	case StatusCompleted:
		if b.CompletedAt == nil {
			b.CompletedAt = &now
		}
	case StatusCancelled:
		if b.CancelledAt == nil {
			b.CancelledAt = &now
		}
	}

	return nil
}

// ApplySlot rewrites the schedule fields from a normalized slot.
func ApplySlot(b *models.Booking, s Slot) {
	b.Date = s.Date
	b.TimeLabel = s.Label
	b.SlotKey = s.Key
}
