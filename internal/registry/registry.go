// internal/registry/registry.go

// Package registry serves the facility catalog: a read-mostly list of
// bookable resources seeded once at startup.
package registry

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/sgchoi-dev/facilitybook/internal/db"
)

var defaultCatalog = []db.CreateFacilityParams{
	{Name: "Board Game Room", Description: "Board and card game space", MaxCapacity: 8, HourlyRate: 3000},
	{Name: "Gymnasium", Description: "Sports and exercise space", MaxCapacity: 50, HourlyRate: 15000},
	{Name: "Lecture Hall", Description: "Education and seminar space", MaxCapacity: 30, HourlyRate: 10000},
	{Name: "Library", Description: "Reading and study space", MaxCapacity: 40, HourlyRate: 3000},
	{Name: "Music Room", Description: "Music practice and performance space", MaxCapacity: 20, HourlyRate: 8000},
	{Name: "PlayStation Lounge", Description: "Gaming and entertainment space", MaxCapacity: 4, HourlyRate: 5000},
}

type Registry struct {
	store *db.DB
}

func New(store *db.DB) *Registry {
	return &Registry{store: store}
}

// List returns the facility catalog ordered by name.
func (r *Registry) List(ctx context.Context) ([]db.Facility, error) {
	return r.store.Queries.ListFacilities(ctx)
}

// Seed inserts the default catalog when the facilities table is empty and is
// a no-op otherwise. The count and the inserts share a transaction, so
// running it twice never duplicates rows.
func (r *Registry) Seed(ctx context.Context) error {
	return r.store.RunInTx(ctx, func(txdb *db.DB) error {
		count, err := txdb.Queries.CountFacilities(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Debug().Int64("count", count).Msg("Facility catalog already seeded")
			return nil
		}

		for _, facility := range defaultCatalog {
			if err := txdb.Queries.CreateFacility(ctx, facility); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(defaultCatalog)).Msg("Seeded default facility catalog")
		return nil
	})
}
