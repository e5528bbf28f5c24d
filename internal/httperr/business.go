package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business error codes used across the booking and notification flows.
const (
	CodeValidationFailed     = "validation_failed"
	CodePastDate             = "past_date"
	CodeServiceNotFound      = "service_not_found"
	CodeBookingNotFound      = "booking_not_found"
	CodeNotificationNotFound = "notification_not_found"
	CodeForbidden            = "forbidden"
	CodeSlotConflict         = "slot_conflict"
	CodeNoFields             = "no_fields"
	CodeInvalidTransition    = "invalid_transition"
	CodeStorage              = "storage_error"
)

type BusinessError struct {
	Code   string
	Fields []string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrValidation carries the names of the missing or malformed fields.
func ErrValidation(fields []string) error {
	return BusinessError{Code: CodeValidationFailed, Fields: fields}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessFields(err error) []string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Fields
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-index violation.
// The partial unique index on the booking slot key turns the check-then-insert
// race into this error, which callers translate to slot_conflict.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
