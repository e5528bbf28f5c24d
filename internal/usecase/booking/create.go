package booking

import (
	"context"

	"github.com/freshlane/carwash-scheduler/internal/audit"
	"github.com/freshlane/carwash-scheduler/internal/catalog"
	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	notifdomain "github.com/freshlane/carwash-scheduler/internal/domain/notification"
	"github.com/freshlane/carwash-scheduler/internal/dto"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
	"github.com/freshlane/carwash-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	ServiceID uint

	Date string
	Time string

	VehicleType   string
	VehicleNumber string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Notes string
}

// Policy is deployment configuration, not engine behavior: which status a
// fresh booking gets and whether creation itself notifies the owner.
type CreatePolicy struct {
	DefaultStatus  domain.Status
	NotifyOnCreate bool
	Timezone       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo    domain.Repository
	catalog catalog.Lookup
	notifs  notifdomain.Repository
	audit   *audit.Dispatcher
	policy  CreatePolicy
}

func NewCreateBooking(
	repo domain.Repository,
	cat catalog.Lookup,
	notifs notifdomain.Repository,
	auditor *audit.Dispatcher,
	policy CreatePolicy,
) *CreateBooking {
	if !domain.IsValidStatus(policy.DefaultStatus) {
		policy.DefaultStatus = domain.StatusPending
	}
	return &CreateBooking{
		repo:    repo,
		catalog: cat,
		notifs:  notifs,
		audit:   auditor,
		policy:  policy,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*dto.BookingSummary, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	if missing := missingFields(in); len(missing) > 0 {
		return nil, httperr.ErrValidation(missing)
	}

	// --------------------------------------------------
	// Slot normalization
	// --------------------------------------------------
	slot, err := domain.NormalizeSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Past-date guard (calendar day, time of day ignored)
	// --------------------------------------------------
	day, err := domain.DayOf(slot.Date, timezone.Location(uc.policy.Timezone))
	if err != nil {
		return nil, httperr.ErrValidation([]string{"date"})
	}
	if day.Before(timezone.Today(uc.policy.Timezone)) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	// --------------------------------------------------
	// Catalog lookup + price snapshot
	// --------------------------------------------------
	svc, err := uc.catalog.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		UserID:        in.UserID,
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		Price:         svc.Price,
		VehicleType:   in.VehicleType,
		VehicleNumber: in.VehicleNumber,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Status:        string(uc.policy.DefaultStatus),
		Notes:         in.Notes,
	}
	domain.ApplySlot(b, slot)

	// --------------------------------------------------
	// Conflict-checked insert
	// --------------------------------------------------
	if err := uc.repo.CreateWithFreeSlot(ctx, b); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			uc.audit.Dispatch(audit.Event{
				UserID:   &in.UserID,
				Action:   "booking_conflict",
				Entity:   "booking",
				Metadata: map[string]any{"slot": slot.Key},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	if uc.policy.NotifyOnCreate {
		// Best effort: a failed notification never fails the booking.
		_ = uc.notifs.Create(ctx, notificationFor(b, domain.Status(b.Status)))
	}

	return &dto.BookingSummary{
		ID:      b.ID,
		Service: b.ServiceName,
		Date:    b.Date,
		Time:    b.TimeLabel,
		Status:  b.Status,
	}, nil
}

func missingFields(in CreateBookingInput) []string {
	var missing []string

	if in.ServiceID == 0 {
		missing = append(missing, "service_id")
	}
	if in.Date == "" {
		missing = append(missing, "date")
	}
	if in.Time == "" {
		missing = append(missing, "time")
	}
	if in.VehicleType == "" {
		missing = append(missing, "vehicle_type")
	}
	if in.VehicleNumber == "" {
		missing = append(missing, "vehicle_number")
	}
	if in.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if in.CustomerEmail == "" {
		missing = append(missing, "customer_email")
	}
	if in.CustomerPhone == "" {
		missing = append(missing, "customer_phone")
	}

	return missing
}
