package alerts

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *models.Date {
	v := models.NewDate(y, m, d)
	return &v
}

func cfg(threshold, months int) models.Configuration {
	return models.Configuration{ID: models.ConfigurationID, LowStockThreshold: threshold, ExpirationMonths: months}
}

func TestDerive_ZeroStockOnly(t *testing.T) {
	products := []models.Product{{ID: "p1", Code: "A", Description: "Aceite", Stock: 0}}

	got := Derive(products, cfg(10, 2), models.NewDate(2025, time.March, 1))

	require.Len(t, got, 1)
	assert.Equal(t, models.AlertZeroStock, got[0].Kind)
	assert.Equal(t, "p1", got[0].ID)
	assert.Nil(t, got[0].DaysUntilExpiration)
}

func TestDerive_LowStockAndNearExpiration(t *testing.T) {
	products := []models.Product{{
		ID:             "p2",
		Code:           "B",
		Description:    "Bolsas",
		Stock:          5,
		ExpirationDate: date(2025, time.March, 31),
	}}

	got := Derive(products, cfg(10, 2), models.NewDate(2025, time.March, 1))

	require.Len(t, got, 2)
	assert.Equal(t, models.AlertLowStock, got[0].Kind)
	assert.Nil(t, got[0].DaysUntilExpiration)
	require.NotNil(t, got[0].ExpirationDate)
	assert.Equal(t, "2025-03-31", got[0].ExpirationDate.String())

	assert.Equal(t, models.AlertNearExpiration, got[1].Kind)
	require.NotNil(t, got[1].DaysUntilExpiration)
	assert.Equal(t, 30, *got[1].DaysUntilExpiration)
}

func TestDerive_ExpiredProductHasNegativeDays(t *testing.T) {
	products := []models.Product{{ID: "p3", Stock: 50, ExpirationDate: date(2025, time.February, 24)}}

	got := Derive(products, cfg(10, 2), models.NewDate(2025, time.March, 1))

	require.Len(t, got, 1)
	assert.Equal(t, models.AlertNearExpiration, got[0].Kind)
	assert.Equal(t, -5, *got[0].DaysUntilExpiration)
}

func TestDerive_NoAlerts(t *testing.T) {
	products := []models.Product{
		{ID: "ok", Stock: 10},
		{ID: "far", Stock: 100, ExpirationDate: date(2025, time.December, 31)},
	}

	got := Derive(products, cfg(10, 2), models.NewDate(2025, time.March, 1))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDerive_HorizonBoundary(t *testing.T) {
	today := models.NewDate(2025, time.January, 31)
	// Jan 31 + 1 month is clamped to Feb 28.
	onLimit := models.Product{ID: "on", Stock: 20, ExpirationDate: date(2025, time.February, 28)}
	pastLimit := models.Product{ID: "past", Stock: 20, ExpirationDate: date(2025, time.March, 1)}

	got := Derive([]models.Product{onLimit, pastLimit}, cfg(10, 1), today)

	require.Len(t, got, 1)
	assert.Equal(t, "on", got[0].ID)
	assert.Equal(t, 28, *got[0].DaysUntilExpiration)
}

func TestDerive_ZeroHorizonOnlyFlagsTodayAndPast(t *testing.T) {
	today := models.NewDate(2025, time.March, 1)
	products := []models.Product{
		{ID: "today", Stock: 20, ExpirationDate: date(2025, time.March, 1)},
		{ID: "tomorrow", Stock: 20, ExpirationDate: date(2025, time.March, 2)},
	}

	got := Derive(products, cfg(10, 0), today)

	require.Len(t, got, 1)
	assert.Equal(t, "today", got[0].ID)
	assert.Equal(t, 0, *got[0].DaysUntilExpiration)
}

func TestDerive_ThresholdZeroStillReportsZeroStock(t *testing.T) {
	products := []models.Product{{ID: "a", Stock: 0}, {ID: "b", Stock: 1}}

	got := Derive(products, cfg(0, 2), models.NewDate(2025, time.March, 1))

	require.Len(t, got, 1)
	assert.Equal(t, models.AlertZeroStock, got[0].Kind)
}

func TestDerive_Properties(t *testing.T) {
	today := models.NewDate(2025, time.June, 15)
	products := []models.Product{
		{ID: "1", Stock: 0, ExpirationDate: date(2025, time.June, 1)},
		{ID: "2", Stock: 3},
		{ID: "3", Stock: 9, ExpirationDate: date(2025, time.August, 15)},
		{ID: "4", Stock: 10, ExpirationDate: date(2025, time.August, 16)},
		{ID: "5", Stock: 0},
	}
	c := cfg(10, 2)

	got := Derive(products, c, today)

	kinds := map[string][]string{}
	for _, a := range got {
		kinds[a.ID] = append(kinds[a.ID], a.Kind)

		switch a.Kind {
		case models.AlertZeroStock:
			assert.Equal(t, 0, a.Stock)
		case models.AlertLowStock:
			assert.True(t, a.Stock > 0 && a.Stock < c.LowStockThreshold)
		case models.AlertNearExpiration:
			require.NotNil(t, a.ExpirationDate)
			require.NotNil(t, a.DaysUntilExpiration)
			assert.False(t, a.ExpirationDate.After(today.AddMonths(c.ExpirationMonths)))
			assert.Equal(t, today.DaysUntil(*a.ExpirationDate), *a.DaysUntilExpiration)
		}
	}

	assert.Equal(t, []string{models.AlertZeroStock, models.AlertNearExpiration}, kinds["1"])
	assert.Equal(t, []string{models.AlertLowStock}, kinds["2"])
	assert.Equal(t, []string{models.AlertLowStock, models.AlertNearExpiration}, kinds["3"])
	assert.NotContains(t, kinds, "4")
	assert.Equal(t, []string{models.AlertZeroStock}, kinds["5"])

	// Same input, same output.
	assert.Equal(t, got, Derive(products, c, today))
}
