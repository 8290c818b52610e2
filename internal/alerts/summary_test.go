package alerts

import (
	"testing"

	"github.com/rogerio-castellano/inventario-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	days := func(n int) *int { return &n }
	list := []models.Alert{
		{ID: "a", Kind: models.AlertZeroStock},
		{ID: "a", Kind: models.AlertNearExpiration, DaysUntilExpiration: days(-3)},
		{ID: "b", Kind: models.AlertLowStock},
		{ID: "c", Kind: models.AlertNearExpiration, DaysUntilExpiration: days(12)},
	}

	s := Summarize(list)

	assert.Equal(t, Summary{
		TotalAlerts:      4,
		ZeroStock:        1,
		LowStock:         1,
		NearExpiration:   2,
		Expired:          1,
		ProductsAffected: 3,
	}, s)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize([]models.Alert{}))
}
