package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/freshlane/carwash-scheduler/internal/httperr"
	"github.com/freshlane/carwash-scheduler/internal/models"
)

// Lookup is the read-only catalog boundary the booking engine consumes.
// The engine snapshots name and price at creation time and never asks again.
type Lookup interface {
	GetService(ctx context.Context, id uint) (*models.WashService, error)
	ListServices(ctx context.Context) ([]models.WashService, error)
}

const cacheTTL = 5 * time.Minute

// Catalog serves wash services from Postgres through a redis read-through
// cache. A nil redis client (or any cache failure) degrades to the DB.
type Catalog struct {
	db  *gorm.DB
	rdb *redis.Client
}

func New(db *gorm.DB, rdb *redis.Client) *Catalog {
	return &Catalog{db: db, rdb: rdb}
}

func (c *Catalog) GetService(ctx context.Context, id uint) (*models.WashService, error) {
	key := fmt.Sprintf("catalog:service:%d", id)

	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, key).Result(); err == nil {
			var svc models.WashService
			if json.Unmarshal([]byte(raw), &svc) == nil {
				return &svc, nil
			}
		}
	}

	var svc models.WashService
	if err := c.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
		return nil, err
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(&svc); err == nil {
			c.rdb.Set(ctx, key, raw, cacheTTL)
		}
	}

	return &svc, nil
}

func (c *Catalog) ListServices(ctx context.Context) ([]models.WashService, error) {
	var svcs []models.WashService
	if err := c.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&svcs).Error; err != nil {
		return nil, err
	}
	return svcs, nil
}

// Compile-time check
var _ Lookup = (*Catalog)(nil)
