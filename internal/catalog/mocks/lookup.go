// Package mocks provides a testify mock of the catalog lookup.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/freshlane/carwash-scheduler/internal/models"
)

type Lookup struct {
	mock.Mock
}

func NewLookup(t *testing.T) *Lookup {
	m := &Lookup{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Lookup) GetService(ctx context.Context, id uint) (*models.WashService, error) {
	args := m.Called(ctx, id)
	var svc *models.WashService
	if args.Get(0) != nil {
		svc = args.Get(0).(*models.WashService)
	}
	return svc, args.Error(1)
}

func (m *Lookup) ListServices(ctx context.Context) ([]models.WashService, error) {
	args := m.Called(ctx)
	var svcs []models.WashService
	if args.Get(0) != nil {
		svcs = args.Get(0).([]models.WashService)
	}
	return svcs, args.Error(1)
}
