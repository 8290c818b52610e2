package repo

import (
	"context"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

// ConfigurationRepository stores the single configuration record under
// models.ConfigurationID.
type ConfigurationRepository interface {
	// Get returns ErrConfigurationNotFound when no record exists yet.
	Get(ctx context.Context) (models.Configuration, error)
	// Create inserts cfg unless a record already exists, and returns the
	// stored record. created reports whether cfg was the one inserted.
	Create(ctx context.Context, cfg models.Configuration) (stored models.Configuration, created bool, err error)
	// Update returns ErrConfigurationNotFound when no record exists yet.
	Update(ctx context.Context, patch models.ConfigurationPatch, now time.Time) (models.Configuration, error)
}
