package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
)

type InMemoryConfigurationRepository struct {
	mu  sync.Mutex
	cfg *models.Configuration
}

func NewInMemoryConfigurationRepository() *InMemoryConfigurationRepository {
	return &InMemoryConfigurationRepository{}
}

func (r *InMemoryConfigurationRepository) Get(_ context.Context) (models.Configuration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg == nil {
		return models.Configuration{}, ErrConfigurationNotFound
	}
	return *r.cfg, nil
}

func (r *InMemoryConfigurationRepository) Create(_ context.Context, cfg models.Configuration) (models.Configuration, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg != nil {
		return *r.cfg, false, nil
	}
	cfg.ID = models.ConfigurationID
	r.cfg = &cfg
	return cfg, true, nil
}

func (r *InMemoryConfigurationRepository) Update(_ context.Context, patch models.ConfigurationPatch, now time.Time) (models.Configuration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg == nil {
		return models.Configuration{}, ErrConfigurationNotFound
	}
	patch.Apply(r.cfg, now)
	return *r.cfg, nil
}

// Count reports how many configuration records are stored (zero or one).
func (r *InMemoryConfigurationRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg == nil {
		return 0
	}
	return 1
}

func (r *InMemoryConfigurationRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = nil
}
