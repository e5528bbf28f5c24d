package booking

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

// notificationFor builds the in-app notification fanned out for a booking
// status change. Delivery transports (email, SMS, push) live outside this
// system; the record itself is the product.
func notificationFor(b *models.Booking, to domain.Status) *models.Notification {
	var title, msg, kind string

	switch to {
	case domain.StatusPending:
		title = "Booking received"
		msg = fmt.Sprintf("Your %s on %s at %s is awaiting confirmation.", b.ServiceName, b.Date, b.TimeLabel)
		kind = "info"
	case domain.StatusConfirmed:
		title = "Booking confirmed"
		msg = fmt.Sprintf("Your %s on %s at %s is confirmed.", b.ServiceName, b.Date, b.TimeLabel)
		kind = "success"
	case domain.StatusCompleted:
		title = "Booking completed"
		msg = fmt.Sprintf("Your %s on %s is done. Thanks for washing with us!", b.ServiceName, b.Date)
		kind = "success"
	case domain.StatusCancelled:
		title = "Booking cancelled"
		msg = fmt.Sprintf("Your %s on %s at %s was cancelled.", b.ServiceName, b.Date, b.TimeLabel)
		kind = "warning"
	}

	meta, _ := json.Marshal(map[string]string{
		"date":   b.Date,
		"time":   b.TimeLabel,
		"status": b.Status,
	})

	bookingID := b.ID
	return &models.Notification{
		UserID:    b.UserID,
		Title:     title,
		Message:   msg,
		Type:      kind,
		Link:      "/bookings/" + b.ID,
		BookingID: &bookingID,
		Metadata:  datatypes.JSON(meta),
	}
}
