package notification

import (
	"context"

	bookingdomain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	domain "github.com/freshlane/carwash-scheduler/internal/domain/notification"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

const DefaultLimit = 50

// ======================================================
// OUTPUT
// ======================================================

// BookingRef is the shallow projection shown next to a notification that
// references a booking. A dangling reference degrades to the raw id.
type BookingRef struct {
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

type Item struct {
	models.Notification
	Booking *BookingRef `json:"booking,omitempty"`
}

type ListResult struct {
	Items       []Item `json:"items"`
	UnreadCount int64  `json:"unread_count"`
	TotalCount  int64  `json:"total_count"`
	HasMore     bool   `json:"has_more"`
}

// ======================================================
// USE CASE
// ======================================================

type ListNotifications struct {
	repo     domain.Repository
	bookings bookingdomain.Repository
}

func NewListNotifications(
	repo domain.Repository,
	bookings bookingdomain.Repository,
) *ListNotifications {
	return &ListNotifications{repo: repo, bookings: bookings}
}

func (uc *ListNotifications) Execute(
	ctx context.Context,
	userID uint,
	limit int,
	skip int,
	unreadOnly bool,
) (*ListResult, error) {

	if limit <= 0 {
		limit = DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	ns, err := uc.repo.ListByUser(ctx, userID, limit, skip, unreadOnly)
	if err != nil {
		return nil, err
	}

	total, unread, err := uc.repo.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(ns))
	for _, n := range ns {
		items = append(items, Item{Notification: n})
	}
	uc.attachBookings(ctx, items)

	return &ListResult{
		Items:       items,
		UnreadCount: unread,
		TotalCount:  total,
		HasMore:     total > int64(skip+limit),
	}, nil
}

// attachBookings resolves referenced bookings in one query. Resolution
// failure is not an error: the notification still carries the raw id.
func (uc *ListNotifications) attachBookings(ctx context.Context, items []Item) {
	var ids []string
	for i := range items {
		if items[i].BookingID != nil {
			ids = append(ids, *items[i].BookingID)
		}
	}
	if len(ids) == 0 {
		return
	}

	bs, err := uc.bookings.ListByIDs(ctx, ids)
	if err != nil {
		return
	}

	byID := make(map[string]*models.Booking, len(bs))
	for i := range bs {
		byID[bs[i].ID] = &bs[i]
	}

	for i := range items {
		if items[i].BookingID == nil {
			continue
		}
		if b, ok := byID[*items[i].BookingID]; ok {
			items[i].Booking = &BookingRef{
				Service: b.ServiceName,
				Date:    b.Date,
				Time:    b.TimeLabel,
				Status:  b.Status,
			}
		}
	}
}
