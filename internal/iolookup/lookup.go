// Package iolookup finds WineDB records by their import/export keys.
package iolookup

import (
	"context"
	"errors"

	"github.com/gnames/winedb/pkg/schema"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Finder looks up records by key.
type Finder struct {
	db *gorm.DB
}

// New creates a Finder on top of a connected database.
func New(db *gorm.DB) *Finder {
	return &Finder{db: db}
}

// FindCountry returns a country by its key, e.g. "at".
func (f *Finder) FindCountry(
	ctx context.Context,
	key string,
) (*schema.Country, error) {
	var res schema.Country
	q := f.db.WithContext(ctx).Where("key = ?", key)
	if err := q.First(&res).Error; err != nil {
		return nil, lookupError("country", key, err)
	}
	return &res, nil
}

// FindRegion returns a region by its key, e.g. "n". The country of
// the region is preloaded.
func (f *Finder) FindRegion(
	ctx context.Context,
	key string,
) (*schema.Region, error) {
	var res schema.Region
	q := f.db.WithContext(ctx).
		Preload("Country").
		Where("key = ?", key)
	if err := q.First(&res).Error; err != nil {
		return nil, lookupError("region", key, err)
	}
	return &res, nil
}

// FindCity returns a city by its key together with its country and
// region.
func (f *Finder) FindCity(
	ctx context.Context,
	key string,
) (*schema.City, error) {
	var res schema.City
	q := f.db.WithContext(ctx).
		Preload(clause.Associations).
		Where("key = ?", key)
	if err := q.First(&res).Error; err != nil {
		return nil, lookupError("city", key, err)
	}
	return &res, nil
}

// FindWinery returns a winery by its key, e.g. "antonbauer", with
// its geography and winemaker.
func (f *Finder) FindWinery(
	ctx context.Context,
	key string,
) (*schema.Winery, error) {
	var res schema.Winery
	q := f.db.WithContext(ctx).
		Preload(clause.Associations).
		Where("key = ?", key)
	if err := q.First(&res).Error; err != nil {
		return nil, lookupError("winery", key, err)
	}
	return &res, nil
}

// FindWine returns a wine by winery key and wine key. A wine key is
// unique only within its winery, e.g. antonbauer + gruenerveltliner.
// Every reference of the wine is preloaded.
func (f *Finder) FindWine(
	ctx context.Context,
	wineryKey, wineKey string,
) (*schema.Wine, error) {
	fullKey := wineryKey + "." + wineKey

	var winery schema.Winery
	q := f.db.WithContext(ctx).Where("key = ?", wineryKey)
	if err := q.First(&winery).Error; err != nil {
		return nil, lookupError("wine", fullKey, err)
	}

	var res schema.Wine
	q = f.db.WithContext(ctx).
		Preload(clause.Associations).
		Where("key = ? AND winery_id = ?", wineKey, winery.ID)
	if err := q.First(&res).Error; err != nil {
		return nil, lookupError("wine", fullKey, err)
	}
	return &res, nil
}

func lookupError(entity, key string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError(entity, key, err)
	}
	return QueryError(entity, key, err)
}
