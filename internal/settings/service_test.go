package settings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/rogerio-castellano/inventario-api/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newTestService() (*Service, *repo.InMemoryConfigurationRepository) {
	r := repo.NewInMemoryConfigurationRepository()
	s := NewService(r)
	s.now = func() time.Time { return time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC) }
	return s, r
}

func TestGet_CreatesDefaultsOnce(t *testing.T) {
	s, r := newTestService()
	ctx := context.Background()

	first, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ConfigurationID, first.ID)
	assert.Equal(t, models.DefaultLowStockThreshold, first.LowStockThreshold)
	assert.Equal(t, models.DefaultExpirationMonths, first.ExpirationMonths)

	second, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Count())
}

func TestGet_ConcurrentFirstReadsConverge(t *testing.T) {
	s, r := newTestService()
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]models.Configuration, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cfg, err := s.Get(ctx)
			assert.NoError(t, err)
			results[i] = cfg
		}(i)
	}
	wg.Wait()

	for _, cfg := range results {
		assert.Equal(t, results[0], cfg)
	}
	assert.Equal(t, 1, r.Count())
}

func TestUpdate_EmptyPatch(t *testing.T) {
	s, r := newTestService()

	_, err := s.Update(context.Background(), models.ConfigurationPatch{})

	assert.ErrorIs(t, err, models.ErrEmptyPatch)
	assert.Equal(t, 0, r.Count())
}

func TestUpdate_WithoutRecordCreatesFromDefaults(t *testing.T) {
	s, r := newTestService()

	cfg, err := s.Update(context.Background(), models.ConfigurationPatch{ExpirationMonths: intPtr(3)})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultLowStockThreshold, cfg.LowStockThreshold)
	assert.Equal(t, 3, cfg.ExpirationMonths)
	assert.Equal(t, 1, r.Count())
}

func TestUpdate_ChangesOnlySuppliedFields(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	before, err := s.Get(ctx)
	require.NoError(t, err)

	later := before.UpdatedAt.Add(time.Minute)
	s.now = func() time.Time { return later }

	after, err := s.Update(ctx, models.ConfigurationPatch{LowStockThreshold: intPtr(5)})
	require.NoError(t, err)

	assert.Equal(t, 5, after.LowStockThreshold)
	assert.Equal(t, before.ExpirationMonths, after.ExpirationMonths)
	assert.Equal(t, later, after.UpdatedAt)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, after, got)
}
