// Package settings owns the single configuration record that drives alert
// thresholds.
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
)

type Service struct {
	repo repo.ConfigurationRepository
	now  func() time.Time
}

func NewService(r repo.ConfigurationRepository) *Service {
	return &Service{repo: r, now: time.Now}
}

// Get returns the stored configuration, creating it with defaults on the
// first call.
func (s *Service) Get(ctx context.Context) (models.Configuration, error) {
	cfg, err := s.repo.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, repo.ErrConfigurationNotFound) {
		return models.Configuration{}, fmt.Errorf("load configuration: %w", err)
	}

	cfg, _, err = s.repo.Create(ctx, models.DefaultConfiguration(s.now().UTC()))
	if err != nil {
		return models.Configuration{}, fmt.Errorf("create configuration: %w", err)
	}
	return cfg, nil
}

// Update applies patch. Without a stored record, one is created from the
// defaults overlaid with patch.
func (s *Service) Update(ctx context.Context, patch models.ConfigurationPatch) (models.Configuration, error) {
	if patch.IsEmpty() {
		return models.Configuration{}, models.ErrEmptyPatch
	}
	now := s.now().UTC()

	cfg, err := s.repo.Update(ctx, patch, now)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, repo.ErrConfigurationNotFound) {
		return models.Configuration{}, fmt.Errorf("update configuration: %w", err)
	}

	fresh := models.DefaultConfiguration(now)
	patch.Apply(&fresh, now)
	stored, created, err := s.repo.Create(ctx, fresh)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("create configuration: %w", err)
	}
	if created {
		return stored, nil
	}
	// Another request created the record first; apply the patch on top of it.
	cfg, err = s.repo.Update(ctx, patch, now)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("update configuration: %w", err)
	}
	return cfg, nil
}
