package alerts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
)

// ProductSource lists the whole product collection.
type ProductSource interface {
	All(ctx context.Context) ([]models.Product, error)
}

// ConfigurationSource reads the stored configuration without creating it.
type ConfigurationSource interface {
	Get(ctx context.Context) (models.Configuration, error)
}

type Service struct {
	products ProductSource
	config   ConfigurationSource
	now      func() time.Time
	location *time.Location
}

type Option func(*Service)

// WithClock overrides the time source used to compute today's date.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the time zone in which "today" is evaluated.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

func NewService(products ProductSource, config ConfigurationSource, opts ...Option) *Service {
	s := &Service{products: products, config: config, now: time.Now, location: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List computes the current alerts. A missing configuration means defaults
// for this computation; nothing is written.
func (s *Service) List(ctx context.Context) ([]models.Alert, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	cfg, err := s.config.Get(ctx)
	if errors.Is(err, repo.ErrConfigurationNotFound) {
		cfg = models.DefaultConfiguration(s.now())
	} else if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return Derive(products, cfg, s.Today()), nil
}

// Today is the calendar date alerts are computed against.
func (s *Service) Today() models.Date {
	return models.DateOf(s.now().In(s.location))
}
