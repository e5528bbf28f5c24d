package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
)

func TestNormalizeSlot_LabelVariants(t *testing.T) {
	cases := []struct {
		in        string
		wantLabel string
		wantKey   string
	}{
		{"08:00 AM", "08:00 AM", "2025-03-10 08:00"},
		{"8:00 am", "08:00 AM", "2025-03-10 08:00"},
		{"8:00AM", "08:00 AM", "2025-03-10 08:00"},
		{"02:30 PM", "02:30 PM", "2025-03-10 14:30"},
		{"14:30", "02:30 PM", "2025-03-10 14:30"},
		{"12:00 AM", "12:00 AM", "2025-03-10 00:00"},
		{"12:00 PM", "12:00 PM", "2025-03-10 12:00"},
	}

	for _, tc := range cases {
		slot, err := domain.NormalizeSlot("2025-03-10", tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.wantLabel, slot.Label, tc.in)
		assert.Equal(t, tc.wantKey, slot.Key, tc.in)
	}
}

func TestNormalizeSlot_SameSlotSameKey(t *testing.T) {
	a, err := domain.NormalizeSlot("2025-03-10", "10:00 AM")
	assert.NoError(t, err)

	b, err := domain.NormalizeSlot("2025-03-10", "10:00 am")
	assert.NoError(t, err)

	assert.Equal(t, a.Key, b.Key)
}

func TestNormalizeSlot_KeysSortChronologically(t *testing.T) {
	early, _ := domain.NormalizeSlot("2025-03-10", "09:00 AM")
	late, _ := domain.NormalizeSlot("2025-03-10", "01:00 PM")
	nextDay, _ := domain.NormalizeSlot("2025-03-11", "08:00 AM")

	assert.Less(t, early.Key, late.Key)
	assert.Less(t, late.Key, nextDay.Key)
}

func TestNormalizeSlot_Invalid(t *testing.T) {
	_, err := domain.NormalizeSlot("10/03/2025", "08:00 AM")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
	assert.Equal(t, []string{"date"}, httperr.BusinessFields(err))

	_, err = domain.NormalizeSlot("2025-03-10", "eight o'clock")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
	assert.Equal(t, []string{"time"}, httperr.BusinessFields(err))
}
