// Package mocks provides a testify mock of the notification repository.
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

func (m *Repository) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *Repository) ListByUser(ctx context.Context, userID uint, limit, skip int, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit, skip, unreadOnly)
	var ns []models.Notification
	if args.Get(0) != nil {
		ns = args.Get(0).([]models.Notification)
	}
	return ns, args.Error(1)
}

func (m *Repository) Counts(ctx context.Context, userID uint) (int64, int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *Repository) GetByIDForUser(ctx context.Context, id string, userID uint) (*models.Notification, error) {
	args := m.Called(ctx, id, userID)
	var n *models.Notification
	if args.Get(0) != nil {
		n = args.Get(0).(*models.Notification)
	}
	return n, args.Error(1)
}

func (m *Repository) MarkRead(ctx context.Context, id string, userID uint) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Repository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id string, userID uint) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Repository) DeleteAll(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
