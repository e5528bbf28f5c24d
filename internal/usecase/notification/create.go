package notification

import (
	"context"
	"strings"

	"gorm.io/datatypes"

	domain "github.com/freshlane/carwash-scheduler/internal/domain/notification"
	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateNotificationInput struct {
	UserID    uint
	Title     string
	Message   string
	Type      string
	Link      string
	BookingID string
	Metadata  datatypes.JSON
}

var validTypes = map[string]bool{
	"info":    true,
	"success": true,
	"warning": true,
	"error":   true,
}

// ======================================================
// USE CASE
// ======================================================

type CreateNotification struct {
	repo domain.Repository
}

func NewCreateNotification(repo domain.Repository) *CreateNotification {
	return &CreateNotification{repo: repo}
}

func (uc *CreateNotification) Execute(
	ctx context.Context,
	in CreateNotificationInput,
) (*models.Notification, error) {

	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return nil, httperr.ErrValidation(missing)
	}

	kind := in.Type
	if !validTypes[kind] {
		kind = "info"
	}

	n := &models.Notification{
		UserID:   in.UserID,
		Title:    in.Title,
		Message:  in.Message,
		Type:     kind,
		Link:     in.Link,
		Metadata: in.Metadata,
	}
	if in.BookingID != "" {
		id := in.BookingID
		n.BookingID = &id
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}
