package notification

import (
	"context"

	"github.com/freshlane/carwash-scheduler/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		n *models.Notification,
	) error

	ListByUser(
		ctx context.Context,
		userID uint,
		limit int,
		skip int,
		unreadOnly bool,
	) ([]models.Notification, error)

	// Counts returns (total, unread) for the owner.
	Counts(
		ctx context.Context,
		userID uint,
	) (int64, int64, error)

	GetByIDForUser(
		ctx context.Context,
		id string,
		userID uint,
	) (*models.Notification, error)

	// MarkRead / Delete return the number of rows matched so callers can
	// translate zero into not-found without distinguishing "absent" from
	// "not yours".
	MarkRead(
		ctx context.Context,
		id string,
		userID uint,
	) (int64, error)

	MarkAllRead(
		ctx context.Context,
		userID uint,
	) (int64, error)

	Delete(
		ctx context.Context,
		id string,
		userID uint,
	) (int64, error)

	DeleteAll(
		ctx context.Context,
		userID uint,
	) (int64, error)
}
