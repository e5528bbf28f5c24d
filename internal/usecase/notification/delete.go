package notification

import (
	"context"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/notification"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
)

type DeleteNotification struct {
	repo domain.Repository
}

func NewDeleteNotification(repo domain.Repository) *DeleteNotification {
	return &DeleteNotification{repo: repo}
}

func (uc *DeleteNotification) Execute(
	ctx context.Context,
	id string,
	userID uint,
) error {

	affected, err := uc.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotificationNotFound)
	}
	return nil
}

type DeleteAllNotifications struct {
	repo domain.Repository
}

func NewDeleteAllNotifications(repo domain.Repository) *DeleteAllNotifications {
	return &DeleteAllNotifications{repo: repo}
}

// Execute always succeeds; deleting nothing reports 0.
func (uc *DeleteAllNotifications) Execute(
	ctx context.Context,
	userID uint,
) (int64, error) {
	return uc.repo.DeleteAll(ctx, userID)
}
