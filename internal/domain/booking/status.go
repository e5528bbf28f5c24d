package booking

import "github.com/freshlane/carwash-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsOccupying reports whether a booking in this status counts against
// slot exclusivity. Cancelled and completed bookings free their slot.
func IsOccupying(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transition graph
// ===============================

// CanTransition validates the status graph:
//
//	pending   → confirmed | cancelled
//	confirmed → completed | cancelled
//	completed, cancelled → (terminal)
//
// Re-sending the current status is a no-op and always allowed, so that a
// repeated "completed" update stays idempotent.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}

	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCompleted || to == StatusCancelled {
			return nil
		}
	}

	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}
