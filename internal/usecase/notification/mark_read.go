package notification

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/notification"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

type MarkRead struct {
	repo domain.Repository
}

func NewMarkRead(repo domain.Repository) *MarkRead {
	return &MarkRead{repo: repo}
}

// Execute flips read on an (id, owner) match. Zero rows means not-found —
// a notification owned by someone else is indistinguishable from one that
// does not exist, so ownership can't be probed.
func (uc *MarkRead) Execute(
	ctx context.Context,
	id string,
	userID uint,
) (*models.Notification, error) {

	affected, err := uc.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeNotificationNotFound)
	}

	n, err := uc.repo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		// The row can vanish between the UPDATE and this read.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotificationNotFound)
		}
		return nil, err
	}
	return n, nil
}

type MarkAllRead struct {
	repo domain.Repository
}

func NewMarkAllRead(repo domain.Repository) *MarkAllRead {
	return &MarkAllRead{repo: repo}
}

// Execute is idempotent: a second call finds no unread rows and reports 0.
func (uc *MarkAllRead) Execute(
	ctx context.Context,
	userID uint,
) (int64, error) {
	return uc.repo.MarkAllRead(ctx, userID)
}
