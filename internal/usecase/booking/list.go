package booking

import (
	"context"

	"github.com/freshlane/carwash-scheduler/internal/catalog"
	domain "github.com/freshlane/carwash-scheduler/internal/domain/booking"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

type ListBookings struct {
	repo    domain.Repository
	catalog catalog.Lookup
}

func NewListBookings(repo domain.Repository, cat catalog.Lookup) *ListBookings {
	return &ListBookings{repo: repo, catalog: cat}
}

// Execute returns the owner's bookings newest slot first. Rows written
// before price snapshotting existed carry a zero price; those are repaired
// from the live catalog at read time. Compat path only — nothing is written
// back, and bookings created today never take it.
func (uc *ListBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	bs, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for i := range bs {
		if bs[i].Price != 0 {
			continue
		}
		svc, err := uc.catalog.GetService(ctx, bs[i].ServiceID)
		if err != nil {
			continue
		}
		bs[i].Price = svc.Price
		if bs[i].ServiceName == "" {
			bs[i].ServiceName = svc.Name
		}
	}

	return bs, nil
}
