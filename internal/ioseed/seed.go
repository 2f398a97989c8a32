// Package ioseed inserts reference rows every WineDB database starts
// with.
package ioseed

import (
	"context"
	"log/slog"

	"github.com/gnames/winedb/pkg/schema"
	"gorm.io/gorm"
)

const (
	// CountryKey is the key of the reference country.
	CountryKey = "at"

	// RegionKey is the key of the reference region.
	RegionKey = "n"
)

// Fixtures are the reference geography rows.
type Fixtures struct {
	Country schema.Country
	Region  schema.Region
}

// Seed inserts country at/Austria and region n/Niederösterreich.
// Rows that exist already are returned unchanged, so Seed can run
// many times.
func Seed(ctx context.Context, db *gorm.DB) (*Fixtures, error) {
	var res Fixtures

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where(schema.Country{Key: CountryKey}).
			Attrs(schema.Country{Title: "Austria", Code: "AUT"}).
			FirstOrCreate(&res.Country).Error
		if err != nil {
			return SeedError("country", CountryKey, err)
		}

		err = tx.
			Where(schema.Region{Key: RegionKey, CountryID: res.Country.ID}).
			Attrs(schema.Region{Title: "Niederösterreich"}).
			FirstOrCreate(&res.Region).Error
		if err != nil {
			return SeedError("region", RegionKey, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Reference rows are in place",
		"country", res.Country.Key,
		"region", res.Region.Key,
	)
	return &res, nil
}
