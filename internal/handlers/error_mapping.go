package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/freshlane/carwash-scheduler/internal/httperr"
)

// writeError maps a usecase error onto the HTTP surface. The messages keep
// the caller able to tell "fix your input" from "not allowed" from "try a
// different slot" from "try again later".
func writeError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeValidationFailed):
		httperr.BadRequestFields(c, httperr.CodeValidationFailed,
			"Missing or malformed fields.", httperr.BusinessFields(err))

	case httperr.IsBusiness(err, httperr.CodePastDate):
		httperr.BadRequest(c, httperr.CodePastDate, "Date is in the past.")

	case httperr.IsBusiness(err, httperr.CodeNoFields):
		httperr.BadRequest(c, httperr.CodeNoFields, "No updatable fields supplied.")

	case httperr.IsBusiness(err, httperr.CodeInvalidTransition):
		httperr.BadRequest(c, httperr.CodeInvalidTransition, "Status change not allowed.")

	case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")

	case httperr.IsBusiness(err, httperr.CodeBookingNotFound):
		httperr.NotFound(c, httperr.CodeBookingNotFound, "Booking not found.")

	case httperr.IsBusiness(err, httperr.CodeNotificationNotFound):
		httperr.NotFound(c, httperr.CodeNotificationNotFound, "Notification not found.")

	case httperr.IsBusiness(err, httperr.CodeForbidden):
		httperr.Forbidden(c, httperr.CodeForbidden, "Not yours.")

	case httperr.IsBusiness(err, httperr.CodeSlotConflict):
		httperr.Conflict(c, httperr.CodeSlotConflict, "This time slot is already booked.")

	default:
		httperr.Internal(c, httperr.CodeStorage, "Storage failure, try again later.")
	}
}
