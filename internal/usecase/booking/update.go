package booking

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/freshlane/carwash-scheduler/internal/audit"
	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	notifdomain "github.com/freshlane/carwash-scheduler/internal/domain/notification"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
	"github.com/freshlane/carwash-scheduler/internal/timezone"
)

// Patch is a partial update. Only whitelisted keys apply; identity and
// bookkeeping fields are stripped no matter what the client sends.
type Patch map[string]any

var patchWhitelist = map[string]bool{
	"date":           true,
	"time":           true,
	"status":         true,
	"notes":          true,
	"vehicle_type":   true,
	"vehicle_number": true,
	"customer_name":  true,
	"customer_email": true,
	"customer_phone": true,
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo   domain.Repository
	notifs notifdomain.Repository
	audit  *audit.Dispatcher
	tz     string
}

func NewUpdateBooking(
	repo domain.Repository,
	notifs notifdomain.Repository,
	auditor *audit.Dispatcher,
	tz string,
) *UpdateBooking {
	return &UpdateBooking{
		repo:   repo,
		notifs: notifs,
		audit:  auditor,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID string,
	callerID uint,
	patch Patch,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, err
	}

	if b.UserID != callerID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	fields := effectiveFields(patch)
	if len(fields) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeNoFields)
	}
	if bad := nonStringFields(fields); len(bad) > 0 {
		return nil, httperr.ErrValidation(bad)
	}

	// --------------------------------------------------
	// Reschedule: recompute the slot key from whichever of
	// date/time changed, keeping the other half as-is.
	// --------------------------------------------------
	slotChanged := false
	if fields["date"] != nil || fields["time"] != nil {
		date := b.Date
		if v, ok := fields["date"].(string); ok {
			date = v
		}
		label := b.TimeLabel
		if v, ok := fields["time"].(string); ok {
			label = v
		}

		slot, err := domain.NormalizeSlot(date, label)
		if err != nil {
			return nil, err
		}
		if slot.Key != b.SlotKey {
			domain.ApplySlot(b, slot)
			slotChanged = true
		}
	}

	// --------------------------------------------------
	// Status transition (stamps CompletedAt / CancelledAt)
	// --------------------------------------------------
	statusChanged := false
	prevStatus := domain.Status(b.Status)
	if raw, ok := fields["status"]; ok {
		next, ok := raw.(string)
		if !ok || !domain.IsValidStatus(domain.Status(next)) {
			return nil, httperr.ErrValidation([]string{"status"})
		}

		now := timezone.NowIn(uc.tz)
		if err := domain.ApplyStatus(b, domain.Status(next), now); err != nil {
			return nil, err
		}
		statusChanged = domain.Status(b.Status) != prevStatus
	}

	// --------------------------------------------------
	// Remaining scalar fields
	// --------------------------------------------------
	applyString := func(key string, dst *string) {
		if v, ok := fields[key].(string); ok {
			*dst = v
		}
	}
	applyString("notes", &b.Notes)
	applyString("vehicle_type", &b.VehicleType)
	applyString("vehicle_number", &b.VehicleNumber)
	applyString("customer_name", &b.CustomerName)
	applyString("customer_email", &b.CustomerEmail)
	applyString("customer_phone", &b.CustomerPhone)

	// --------------------------------------------------
	// Persist; a moved slot goes through the conflict check
	// --------------------------------------------------
	if slotChanged && domain.IsOccupying(domain.Status(b.Status)) {
		err = uc.repo.SaveWithFreeSlot(ctx, b)
	} else {
		err = uc.repo.Save(ctx, b)
	}
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"status": b.Status},
	})

	// Every status transition fans out an in-app notification.
	if statusChanged {
		_ = uc.notifs.Create(ctx, notificationFor(b, domain.Status(b.Status)))
	}

	return b, nil
}

// effectiveFields drops non-whitelisted keys and explicit nulls, so a
// client can never smuggle in id, owner, or timestamp overrides.
func effectiveFields(patch Patch) map[string]any {
	out := make(map[string]any, len(patch))
	for k, v := range patch {
		if !patchWhitelist[k] || v == nil {
			continue
		}
		out[k] = v
	}
	return out
}

// Every patchable field is a string; anything else is rejected rather than
// silently skipped, so the caller never gets a 200 for a no-op write.
func nonStringFields(fields map[string]any) []string {
	var bad []string
	for k, v := range fields {
		if _, ok := v.(string); !ok {
			bad = append(bad, k)
		}
	}
	sort.Strings(bad)
	return bad
}
