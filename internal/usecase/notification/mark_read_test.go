package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	notifmocks "github.com/freshlane/carwash-scheduler/internal/domain/notification/mocks"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
	ucNotification "github.com/freshlane/carwash-scheduler/internal/usecase/notification"
)

func TestMarkRead_Success(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	uc := ucNotification.NewMarkRead(repo)

	ctx := context.Background()
	repo.On("MarkRead", ctx, "n-1", uint(7)).Return(int64(1), nil)
	repo.On("GetByIDForUser", ctx, "n-1", uint(7)).
		Return(&models.Notification{ID: "n-1", UserID: 7, Read: true}, nil)

	n, err := uc.Execute(ctx, "n-1", 7)

	assert.NoError(t, err)
	assert.True(t, n.Read)
}

func TestMarkRead_WrongOwnerIsNotFound(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	uc := ucNotification.NewMarkRead(repo)

	ctx := context.Background()
	// Owner scoping means someone else's notification matches zero rows.
	repo.On("MarkRead", ctx, "n-1", uint(99)).Return(int64(0), nil)

	n, err := uc.Execute(ctx, "n-1", 99)

	assert.Nil(t, n)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotificationNotFound))
}

func TestMarkRead_DeletedDuringRefetchIsNotFound(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	uc := ucNotification.NewMarkRead(repo)

	ctx := context.Background()
	// The row can be deleted between the UPDATE and the read-back; that is
	// still a not-found for the caller, never a storage error.
	repo.On("MarkRead", ctx, "n-1", uint(7)).Return(int64(1), nil)
	repo.On("GetByIDForUser", ctx, "n-1", uint(7)).
		Return(nil, gorm.ErrRecordNotFound)

	n, err := uc.Execute(ctx, "n-1", 7)

	assert.Nil(t, n)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotificationNotFound))
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	uc := ucNotification.NewMarkAllRead(repo)

	ctx := context.Background()
	repo.On("MarkAllRead", ctx, uint(7)).Return(int64(4), nil).Once()
	repo.On("MarkAllRead", ctx, uint(7)).Return(int64(0), nil).Once()

	modified, err := uc.Execute(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), modified)

	modified, err = uc.Execute(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)
}

func TestDeleteNotification_NotFound(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	uc := ucNotification.NewDeleteNotification(repo)

	ctx := context.Background()
	repo.On("Delete", ctx, "n-1", uint(7)).Return(int64(0), nil)

	err := uc.Execute(ctx, "n-1", 7)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotificationNotFound))
}

func TestDeleteAllNotifications_ZeroIsFine(t *testing.T) {
	repo := notifmocks.NewRepository(t)
	uc := ucNotification.NewDeleteAllNotifications(repo)

	ctx := context.Background()
	repo.On("DeleteAll", ctx, uint(7)).Return(int64(0), nil)

	deleted, err := uc.Execute(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}
