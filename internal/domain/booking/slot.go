package booking

import (
	"strings"
	"time"

	"github.com/freshlane/carwash-scheduler/internal/httperr"
)

// ===============================
// Slot normalization
// ===============================

// A slot is a (calendar date, time label) pair. Callers send free-form
// labels ("8:00 am", "08:00 AM", "14:30"); NormalizeSlot reduces them to a
// canonical 12-hour label plus a "2006-01-02 15:04" key. The key sorts
// chronologically and is the uniqueness key for conflict detection.

const (
	DateLayout  = "2006-01-02"
	labelLayout = "03:04 PM"
	keyLayout   = "2006-01-02 15:04"
)

type Slot struct {
	Date  string
	Label string
	Key   string
}

func NormalizeSlot(date, timeLabel string) (Slot, error) {
	date = strings.TrimSpace(date)
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return Slot{}, httperr.ErrValidation([]string{"date"})
	}

	t, err := parseTimeLabel(timeLabel)
	if err != nil {
		return Slot{}, httperr.ErrValidation([]string{"time"})
	}

	at := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)

	return Slot{
		Date:  date,
		Label: at.Format(labelLayout),
		Key:   at.Format(keyLayout),
	}, nil
}

func parseTimeLabel(label string) (time.Time, error) {
	label = strings.ToUpper(strings.TrimSpace(label))

	if t, err := time.Parse("3:04 PM", label); err == nil {
		return t, nil
	}
	if t, err := time.Parse("3:04PM", label); err == nil {
		return t, nil
	}
	return time.Parse("15:04", label)
}

// DayOf parses the slot date in loc, at midnight. Used for past-date checks.
func DayOf(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}
