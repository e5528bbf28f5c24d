// Package mocks provides a testify mock of the booking repository.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/freshlane/carwash-scheduler/internal/models"
)

type Repository struct {
	mock.Mock
}

func NewRepository(t *testing.T) *Repository {
	m := &Repository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Repository) CreateWithFreeSlot(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *Repository) SaveWithFreeSlot(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *Repository) Save(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *Repository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	var b *models.Booking
	if args.Get(0) != nil {
		b = args.Get(0).(*models.Booking)
	}
	return b, args.Error(1)
}

func (m *Repository) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	var bs []models.Booking
	if args.Get(0) != nil {
		bs = args.Get(0).([]models.Booking)
	}
	return bs, args.Error(1)
}

func (m *Repository) ListByIDs(ctx context.Context, ids []string) ([]models.Booking, error) {
	args := m.Called(ctx, ids)
	var bs []models.Booking
	if args.Get(0) != nil {
		bs = args.Get(0).([]models.Booking)
	}
	return bs, args.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
