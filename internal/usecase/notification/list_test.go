package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	bookingmocks "github.com/freshlane/carwash-scheduler/internal/domain/booking/mocks"
	notifmocks "github.com/freshlane/carwash-scheduler/internal/domain/notification/mocks"
	"github.com/freshlane/carwash-scheduler/internal/models"
	ucNotification "github.com/freshlane/carwash-scheduler/internal/usecase/notification"
)

func strptr(s string) *string { return &s }

func TestListNotifications_HasMoreFormula(t *testing.T) {
	cases := []struct {
		name        string
		limit, skip int
		total       int64
		effLimit    int
		wantHasMore bool
	}{
		{"first page of many", 10, 0, 25, 10, true},
		{"exact fit", 10, 15, 25, 10, false},
		{"middle page", 10, 10, 25, 10, true},
		{"skip beyond total", 10, 30, 25, 10, false},
		{"zero limit takes default", 0, 0, 80, ucNotification.DefaultLimit, true},
		{"zero limit small set", 0, 0, 20, ucNotification.DefaultLimit, false},
		{"skip at total", 5, 25, 25, 5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := notifmocks.NewRepository(t)
			bookings := bookingmocks.NewRepository(t)
			uc := ucNotification.NewListNotifications(repo, bookings)

			ctx := context.Background()
			repo.On("ListByUser", ctx, uint(7), tc.effLimit, tc.skip, false).
				Return([]models.Notification{}, nil)
			repo.On("Counts", ctx, uint(7)).Return(tc.total, int64(0), nil)

			res, err := uc.Execute(ctx, 7, tc.limit, tc.skip, false)

			assert.NoError(t, err)
			assert.Equal(t, tc.wantHasMore, res.HasMore)
			assert.Equal(t, tc.total, res.TotalCount)
		})
	}
}

func TestListNotifications_UnreadCountPassesThrough(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	bookings := bookingmocks.NewRepository(t)
	uc := ucNotification.NewListNotifications(repo, bookings)

	ctx := context.Background()
	repo.On("ListByUser", ctx, uint(7), 50, 0, true).
		Return([]models.Notification{
			{ID: "n-1", UserID: 7, Title: "A", Message: "a"},
		}, nil)
	repo.On("Counts", ctx, uint(7)).Return(int64(12), int64(3), nil)

	res, err := uc.Execute(ctx, 7, 0, 0, true)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.UnreadCount)
	assert.Len(t, res.Items, 1)
}

func TestListNotifications_AttachesBookingProjection(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	bookings := bookingmocks.NewRepository(t)
	uc := ucNotification.NewListNotifications(repo, bookings)

	ctx := context.Background()
	repo.On("ListByUser", ctx, uint(7), 50, 0, false).
		Return([]models.Notification{
			{ID: "n-1", UserID: 7, BookingID: strptr("b-1")},
			{ID: "n-2", UserID: 7, BookingID: strptr("b-gone")},
			{ID: "n-3", UserID: 7},
		}, nil)
	repo.On("Counts", ctx, uint(7)).Return(int64(3), int64(1), nil)
	bookings.On("ListByIDs", ctx, []string{"b-1", "b-gone"}).
		Return([]models.Booking{
			{ID: "b-1", ServiceName: "Premium Wash", Date: "2025-03-10", TimeLabel: "10:00 AM", Status: "confirmed"},
		}, nil)

	res, err := uc.Execute(ctx, 7, 0, 0, false)

	assert.NoError(t, err)
	if assert.Len(t, res.Items, 3) {
		// resolved reference gets the projection
		if assert.NotNil(t, res.Items[0].Booking) {
			assert.Equal(t, "Premium Wash", res.Items[0].Booking.Service)
			assert.Equal(t, "confirmed", res.Items[0].Booking.Status)
		}
		// deleted booking degrades to the raw id, not an error
		assert.Nil(t, res.Items[1].Booking)
		assert.Equal(t, "b-gone", *res.Items[1].BookingID)
		// notification without a reference stays bare
		assert.Nil(t, res.Items[2].Booking)
	}
}

func TestListNotifications_ProjectionLookupFailureDegrades(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	bookings := bookingmocks.NewRepository(t)
	uc := ucNotification.NewListNotifications(repo, bookings)

	ctx := context.Background()
	repo.On("ListByUser", ctx, uint(7), 50, 0, false).
		Return([]models.Notification{
			{ID: "n-1", UserID: 7, BookingID: strptr("b-1")},
		}, nil)
	repo.On("Counts", ctx, uint(7)).Return(int64(1), int64(0), nil)
	bookings.On("ListByIDs", ctx, []string{"b-1"}).
		Return(nil, assert.AnError)

	res, err := uc.Execute(ctx, 7, 0, 0, false)

	assert.NoError(t, err)
	assert.Nil(t, res.Items[0].Booking)
}
