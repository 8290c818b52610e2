package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		from   Date
		months int
		want   Date
	}{
		{"plain", NewDate(2025, time.January, 15), 2, NewDate(2025, time.March, 15)},
		{"clamps to february", NewDate(2025, time.January, 31), 1, NewDate(2025, time.February, 28)},
		{"clamps to leap february", NewDate(2024, time.January, 31), 1, NewDate(2024, time.February, 29)},
		{"clamps to thirty days", NewDate(2025, time.March, 31), 1, NewDate(2025, time.April, 30)},
		{"crosses year", NewDate(2025, time.November, 30), 3, NewDate(2026, time.February, 28)},
		{"zero months", NewDate(2025, time.June, 10), 0, NewDate(2025, time.June, 10)},
		{"negative", NewDate(2025, time.March, 31), -1, NewDate(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want.String(), tt.from.AddMonths(tt.months).String())
		})
	}
}

func TestDateDaysUntil(t *testing.T) {
	today := NewDate(2025, time.March, 1)

	assert.Equal(t, 0, today.DaysUntil(today))
	assert.Equal(t, 28, NewDate(2025, time.February, 1).DaysUntil(today))
	assert.Equal(t, -5, today.DaysUntil(NewDate(2025, time.February, 24)))
	assert.Equal(t, 365, today.DaysUntil(NewDate(2026, time.March, 1)))

	// Beyond the range of time.Duration.
	assert.Equal(t, -739907, NewDate(2026, time.October, 19).DaysUntil(NewDate(1, time.January, 1)))
	assert.Equal(t, 739907, NewDate(1, time.January, 1).DaysUntil(NewDate(2026, time.October, 19)))
}

func TestDateJSON(t *testing.T) {
	type payload struct {
		Due *Date `json:"due"`
	}

	out, err := json.Marshal(payload{Due: ptr(NewDate(2025, time.July, 4))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2025-07-04"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-02-29"}`), &in))
	require.NotNil(t, in.Due)
	assert.Equal(t, "2024-02-29", in.Due.String())

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &null))
	assert.Nil(t, null.Due)

	assert.Error(t, json.Unmarshal([]byte(`{"due":"2025-02-30"}`), &in))
	assert.Error(t, json.Unmarshal([]byte(`{"due":20250101}`), &in))
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2025, time.May, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-05-06", d.String())

	require.NoError(t, d.Scan("2025-12-31"))
	assert.Equal(t, "2025-12-31", d.String())

	require.NoError(t, d.Scan([]byte("2026-01-01")))
	assert.Equal(t, "2026-01-01", d.String())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2025, time.May, 6).Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-05-06", v)
}

func TestProductPatch(t *testing.T) {
	assert.True(t, ProductPatch{}.IsEmpty())

	stock := 0
	patch := ProductPatch{Stock: &stock}
	assert.False(t, patch.IsEmpty())

	created := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	p := Product{Code: "A1", Description: "Arroz", Stock: 12, CreatedAt: created, UpdatedAt: created}
	now := created.Add(time.Hour)
	patch.Apply(&p, now)

	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, "A1", p.Code)
	assert.Equal(t, "Arroz", p.Description)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}

func ptr[T any](v T) *T { return &v }
