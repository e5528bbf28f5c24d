package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	bookingmocks "github.com/freshlane/carwash-scheduler/internal/domain/booking/mocks"
	notifmocks "github.com/freshlane/carwash-scheduler/internal/domain/notification/mocks"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
	ucBooking "github.com/freshlane/carwash-scheduler/internal/usecase/booking"
)

func ownedBooking() *models.Booking {
	return &models.Booking{
		ID:          "b-1",
		UserID:      7,
		ServiceName: "Premium Wash",
		Date:        "2999-03-10",
		TimeLabel:   "10:00 AM",
		SlotKey:     "2999-03-10 10:00",
		Status:      string(domain.StatusPending),
	}
}

func newUpdateUC(repo *bookingmocks.Repository, notifs *notifmocks.Repository) *ucBooking.UpdateBooking {
	return ucBooking.NewUpdateBooking(repo, notifs, nil, "UTC")
}

func TestUpdateBooking_NotFound(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "nope").Return(nil, gorm.ErrRecordNotFound)

	b, err := uc.Execute(ctx, "nope", 7, ucBooking.Patch{"notes": "hi"})

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBookingNotFound))
}

func TestUpdateBooking_WrongOwnerForbidden(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)

	b, err := uc.Execute(ctx, "b-1", 99, ucBooking.Patch{"notes": "mine now"})

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
}

func TestUpdateBooking_ProtectedFieldsStripped(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)

	// A patch made only of protected fields is an empty patch.
	b, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{
		"_id":        "evil",
		"id":         "evil",
		"user_id":    99,
		"created_at": "1999-01-01",
		"updated_at": "1999-01-01",
		"slot_key":   "2999-03-10 23:00",
	})

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoFields))
}

func TestUpdateBooking_ProtectedFieldsIgnoredAlongsideRealOnes(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

	b, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{
		"notes":   "wax please",
		"user_id": 99,
		"id":      "evil",
	})

	assert.NoError(t, err)
	assert.Equal(t, "wax please", b.Notes)
	assert.Equal(t, uint(7), b.UserID)
	assert.Equal(t, "b-1", b.ID)
}

func TestUpdateBooking_NonStringValuesRejected(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)

	// Whitelisted keys with the wrong type fail loudly instead of being
	// dropped into a 200 no-op.
	b, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{
		"notes": 5,
		"date":  20250310,
	})

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
	assert.Equal(t, []string{"date", "notes"}, httperr.BusinessFields(err))
}

func TestUpdateBooking_EmptyPatch(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)

	_, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoFields))
}

func TestUpdateBooking_CompleteStampsOnce(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	b := ownedBooking()
	b.Status = string(domain.StatusConfirmed)

	repo.On("GetByID", ctx, "b-1").Return(b, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)
	notifs.On("Create", ctx, mock.AnythingOfType("*models.Notification")).Return(nil).Once()

	out, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{"status": "completed"})
	assert.NoError(t, err)
	if !assert.NotNil(t, out.CompletedAt) {
		return
	}
	stamp := *out.CompletedAt

	// Re-sending "completed" is a no-op transition: no new stamp, no new
	// notification.
	time.Sleep(10 * time.Millisecond)
	out2, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{"status": "completed"})
	assert.NoError(t, err)
	assert.Equal(t, stamp, *out2.CompletedAt)
}

func TestUpdateBooking_IllegalTransition(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	b := ownedBooking()
	b.Status = string(domain.StatusCancelled)
	repo.On("GetByID", ctx, "b-1").Return(b, nil)

	_, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{"status": "confirmed"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestUpdateBooking_UnknownStatusRejected(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)

	_, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{"status": "parked"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationFailed))
}

func TestUpdateBooking_RescheduleRunsConflictCheck(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)
	repo.On("SaveWithFreeSlot", ctx, mock.MatchedBy(func(b *models.Booking) bool {
		return b.SlotKey == "2999-03-11 14:00" && b.Date == "2999-03-11"
	})).Return(nil)

	b, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{
		"date": "2999-03-11",
		"time": "02:00 PM",
	})

	assert.NoError(t, err)
	assert.Equal(t, "02:00 PM", b.TimeLabel)
}

func TestUpdateBooking_RescheduleConflictSurfaces(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)
	repo.On("SaveWithFreeSlot", ctx, mock.AnythingOfType("*models.Booking")).
		Return(httperr.ErrBusiness(httperr.CodeSlotConflict))

	_, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{"time": "11:00 AM"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestUpdateBooking_StatusChangeNotifies(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := newUpdateUC(repo, notifs)

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)
	notifs.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 7 &&
			n.Title == "Booking confirmed" &&
			n.Type == "success" &&
			n.BookingID != nil && *n.BookingID == "b-1"
	})).Return(nil).Once()

	_, err := uc.Execute(ctx, "b-1", 7, ucBooking.Patch{"status": "confirmed"})
	assert.NoError(t, err)
}

func TestCancelBooking_SugarsUpdate(t *testing.T) {
	repo := bookingmocks.NewRepository(t)
	notifs := notifmocks.NewRepository(t)
	uc := ucBooking.NewCancelBooking(newUpdateUC(repo, notifs))

	ctx := context.Background()
	repo.On("GetByID", ctx, "b-1").Return(ownedBooking(), nil)
	repo.On("Save", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)
	notifs.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Title == "Booking cancelled" && n.Type == "warning"
	})).Return(nil).Once()

	b, err := uc.Execute(ctx, "b-1", 7)
	assert.NoError(t, err)
	assert.Equal(t, "cancelled", b.Status)
	assert.NotNil(t, b.CancelledAt)
}
